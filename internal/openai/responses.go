package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// The responses API is what deep-research models are served on. go-openai has
// no bindings for it, so the request is assembled by hand.

type responsesRequest struct {
	Model     string           `json:"model"`
	Input     []responsesInput `json:"input"`
	Reasoning *reasoningConfig `json:"reasoning,omitempty"`
	Tools     []responsesTool  `json:"tools,omitempty"`
}

type responsesInput struct {
	Role    string             `json:"role"`
	Content []responsesContent `json:"content"`
}

type responsesContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type reasoningConfig struct {
	Summary string `json:"summary"`
}

type responsesTool struct {
	Type string `json:"type"`
}

type responsesResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// deepResearch issues one tool-augmented research call. The system message
// rides in a developer-role input block and web search is enabled so the model
// can ground the report in live sources.
func (c *Client) deepResearch(ctx context.Context, model, system, userPrompt string) (string, error) {
	req := responsesRequest{
		Model: model,
		Input: []responsesInput{
			{
				Role:    "developer",
				Content: []responsesContent{{Type: "input_text", Text: system}},
			},
			{
				Role:    "user",
				Content: []responsesContent{{Type: "input_text", Text: userPrompt}},
			},
		},
		Reasoning: &reasoningConfig{Summary: "auto"},
		Tools:     []responsesTool{{Type: "web_search_preview"}},
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/responses", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp responsesResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error: %s - %s", apiResp.Error.Type, apiResp.Error.Message)
	}

	if len(apiResp.Output) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	// The report text is the last output item; earlier items are reasoning
	// summaries and tool traces.
	last := apiResp.Output[len(apiResp.Output)-1]
	if len(last.Content) == 0 {
		return "", fmt.Errorf("response output has no content")
	}

	return last.Content[0].Text, nil
}
