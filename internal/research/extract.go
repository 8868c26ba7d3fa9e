package research

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports a bracket-delimited substring that failed to decode as a
// JSON array. The offending substring is kept for diagnostics.
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse founder candidates: %v (snippet: %s)", e.Err, truncate(e.Snippet, 200))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ExtractFounderCandidates scrapes a JSON array out of a free-text model
// response. The substring between the first "[" and the last "]" is decoded;
// no "[" at all means the model identified no founders, which is a valid
// outcome and returns (nil, nil). An opening bracket whose substring is not a
// valid JSON array returns a *ParseError.
//
// Known limitation: a response containing two arrays, or a stray "]" before
// the real array, will mis-parse. Tightening the scan risks rejecting valid
// responses wrapped in prose or markdown fences, so the lenient scan stays.
func ExtractFounderCandidates(raw string) ([]FounderCandidate, error) {
	start := strings.Index(raw, "[")
	if start == -1 {
		return nil, nil
	}

	end := strings.LastIndex(raw, "]")
	snippet := raw[start:]
	if end > start {
		snippet = raw[start : end+1]
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(snippet), &decoded); err != nil {
		return nil, &ParseError{Snippet: snippet, Err: err}
	}

	candidates := make([]FounderCandidate, 0, len(decoded))
	for _, obj := range decoded {
		candidates = append(candidates, coerceCandidate(obj))
	}
	return candidates, nil
}

// coerceCandidate fills defaults once, at the parse boundary, so downstream
// code never deals with missing keys.
func coerceCandidate(obj map[string]any) FounderCandidate {
	c := FounderCandidate{
		Name:      stringField(obj, "name"),
		Email:     stringField(obj, "email"),
		IsFounder: stringField(obj, "is_founder"),
		Company:   stringField(obj, "company"),
		Reasoning: stringField(obj, "reasoning"),
	}
	if c.IsFounder == "" {
		c.IsFounder = IsFounderUnknown
	}
	return c
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}
