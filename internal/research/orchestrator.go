package research

import (
	"context"
)

// Caller is the model backend as the orchestrator sees it: one research
// invocation against one model. The adapter owns the call shape (deep-research
// vs. plain chat completion) for the given model id.
type Caller interface {
	Research(ctx context.Context, modelID, prompt string) (string, error)
}

// Orchestrator runs the sequential model-fallback loop for research targets.
type Orchestrator struct {
	caller Caller
}

// NewOrchestrator creates an orchestrator over the given model backend.
func NewOrchestrator(caller Caller) *Orchestrator {
	return &Orchestrator{caller: caller}
}

// Run tries each candidate model in order with the assembled research prompt
// until one returns a non-empty report. First success wins; there is no
// aggregation across models and no retry of a failed model. With no candidates
// it returns an exhausted result immediately, without any network call. Every
// failure reason is recorded so exhaustion can be surfaced rather than
// silently swallowed.
func (o *Orchestrator) Run(ctx context.Context, prompt string, candidates []ModelCandidate) ReportResult {
	attempts := []Attempt{}

	for _, candidate := range candidates {
		text, err := o.caller.Research(ctx, candidate.ID, prompt)
		if err != nil {
			attempts = append(attempts, Attempt{ModelID: candidate.ID, Reason: err.Error()})
			continue
		}
		if text == "" {
			attempts = append(attempts, Attempt{ModelID: candidate.ID, Reason: "empty response"})
			continue
		}
		return ReportResult{
			Status:    StatusSuccess,
			ModelUsed: candidate.ID,
			Text:      text,
			Attempts:  attempts,
		}
	}

	return ReportResult{
		Status:   StatusExhausted,
		Attempts: attempts,
	}
}
