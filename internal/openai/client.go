package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/aadithv/scout/internal/prompt"
	"github.com/aadithv/scout/internal/research"
)

const (
	defaultBaseURL           = "https://api.openai.com/v1"
	defaultResearchTimeout   = 10 * time.Minute
	defaultResearchMaxTokens = 40000

	founderMaxTokens   = 800
	founderTemperature = 0.2
)

// Client is the OpenAI backend adapter. Chat completions and model listing go
// through go-openai; deep-research calls go through the responses API, which
// go-openai does not cover, via a raw HTTP request.
type Client struct {
	apiKey            string
	baseURL           string
	api               *goopenai.Client
	httpClient        *http.Client
	researchTimeout   time.Duration
	researchMaxTokens int
}

// Config configures the OpenAI client.
type Config struct {
	APIKey                 string
	BaseURL                string // override for tests; defaults to the public API
	ResearchTimeoutMinutes int
	ResearchMaxTokens      int
}

// NewClient creates an OpenAI backend adapter.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	researchTimeout := defaultResearchTimeout
	if cfg.ResearchTimeoutMinutes > 0 {
		researchTimeout = time.Duration(cfg.ResearchTimeoutMinutes) * time.Minute
	}

	researchMaxTokens := cfg.ResearchMaxTokens
	if researchMaxTokens <= 0 {
		researchMaxTokens = defaultResearchMaxTokens
	}

	apiConfig := goopenai.DefaultConfig(cfg.APIKey)
	apiConfig.BaseURL = baseURL

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		api:     goopenai.NewClientWithConfig(apiConfig),
		httpClient: &http.Client{
			Timeout: researchTimeout,
		},
		researchTimeout:   researchTimeout,
		researchMaxTokens: researchMaxTokens,
	}
}

// IsConfigured returns true if the client has an API key.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// ListModelIDs returns the ids of all models available to this API key.
func (c *Client) ListModelIDs(ctx context.Context) ([]string, error) {
	list, err := c.api.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// Complete runs a plain chat completion and returns the response text.
// Reasoning-tier models reject the temperature and max_tokens knobs, so those
// are only set for standard models.
func (c *Client) Complete(ctx context.Context, model, system, userPrompt string, maxTokens int) (string, error) {
	var messages []goopenai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	req := goopenai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}
	if isReasoningModel(model) {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
		req.Temperature = founderTemperature
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return resp.Choices[0].Message.Content, nil
}

// IdentifyFounders runs the founder-identification completion for one meeting
// prompt with the short-call budget (this is a chat-sized task, not a report).
func (c *Client) IdentifyFounders(ctx context.Context, model, founderPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return c.Complete(ctx, model, "", founderPrompt, founderMaxTokens)
}

// Research issues one research invocation against one model, picking the call
// shape the model requires: deep-research variants take the tool-augmented
// responses call, everything else takes a long-form chat completion with the
// research system message folded in. Implements research.Caller.
func (c *Client) Research(ctx context.Context, modelID, researchPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.researchTimeout)
	defer cancel()

	if research.IsDeepResearchModel(modelID) {
		return c.deepResearch(ctx, modelID, prompt.ResearchSystemPrompt, researchPrompt)
	}
	return c.Complete(ctx, modelID, prompt.ResearchSystemPrompt, researchPrompt, c.researchMaxTokens)
}

// isReasoningModel reports whether the id names an o-series reasoning model.
func isReasoningModel(id string) bool {
	for _, prefix := range []string{"o1", "o3", "o4"} {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}
