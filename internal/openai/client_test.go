package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, NewClient(Config{APIKey: "sk-test"}).IsConfigured())
	assert.False(t, NewClient(Config{}).IsConfigured())
}

func TestListModelIDs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		fmt.Fprint(w, `{"object": "list", "data": [
			{"id": "gpt-4o", "object": "model"},
			{"id": "o4-mini-deep-research", "object": "model"}
		]}`)
	})

	ids, err := client.ListModelIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gpt-4o", "o4-mini-deep-research"}, ids)
}

func TestComplete(t *testing.T) {
	completionResponse := `{"choices": [{"message": {"role": "assistant", "content": "hello"}}]}`

	t.Run("standard model sets temperature and max_tokens", func(t *testing.T) {
		var captured map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			fmt.Fprint(w, completionResponse)
		})

		text, err := client.Complete(context.Background(), "gpt-4o", "system here", "user here", 800)
		require.NoError(t, err)
		assert.Equal(t, "hello", text)

		assert.Equal(t, "gpt-4o", captured["model"])
		assert.EqualValues(t, 800, captured["max_tokens"])
		assert.EqualValues(t, 0.2, captured["temperature"])
		assert.Nil(t, captured["max_completion_tokens"])

		messages := captured["messages"].([]any)
		require.Len(t, messages, 2)
		first := messages[0].(map[string]any)
		assert.Equal(t, "system", first["role"])
		assert.Equal(t, "system here", first["content"])
	})

	t.Run("reasoning model uses max_completion_tokens", func(t *testing.T) {
		var captured map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			fmt.Fprint(w, completionResponse)
		})

		_, err := client.Complete(context.Background(), "o4-mini", "", "user here", 40000)
		require.NoError(t, err)

		assert.EqualValues(t, 40000, captured["max_completion_tokens"])
		assert.Nil(t, captured["max_tokens"])
		assert.Nil(t, captured["temperature"])

		// No system message was given, so only the user message rides along.
		messages := captured["messages"].([]any)
		require.Len(t, messages, 1)
	})

	t.Run("API error surfaces", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error": {"message": "rate limited", "type": "rate_limit_error"}}`)
		})

		_, err := client.Complete(context.Background(), "gpt-4o", "", "user", 800)
		assert.Error(t, err)
	})
}

func TestResearch(t *testing.T) {
	t.Run("deep-research model takes the responses call", func(t *testing.T) {
		var captured responsesRequest
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/responses", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			fmt.Fprint(w, `{"output": [
				{"type": "reasoning", "content": [{"type": "reasoning_text", "text": "thinking"}]},
				{"type": "message", "content": [{"type": "output_text", "text": "# Report"}]}
			]}`)
		})

		text, err := client.Research(context.Background(), "o4-mini-deep-research", "research Acme")
		require.NoError(t, err)
		assert.Equal(t, "# Report", text)

		assert.Equal(t, "o4-mini-deep-research", captured.Model)
		require.Len(t, captured.Input, 2)
		assert.Equal(t, "developer", captured.Input[0].Role)
		assert.Contains(t, captured.Input[0].Content[0].Text, "Formatting re-enabled")
		assert.Equal(t, "user", captured.Input[1].Role)
		assert.Equal(t, "research Acme", captured.Input[1].Content[0].Text)
		require.Len(t, captured.Tools, 1)
		assert.Equal(t, "web_search_preview", captured.Tools[0].Type)
	})

	t.Run("standard model takes a chat completion", func(t *testing.T) {
		var path string
		var captured map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			fmt.Fprint(w, `{"choices": [{"message": {"content": "# Report"}}]}`)
		})

		text, err := client.Research(context.Background(), "o4-mini", "research Acme")
		require.NoError(t, err)
		assert.Equal(t, "# Report", text)
		assert.Equal(t, "/chat/completions", path)

		messages := captured["messages"].([]any)
		require.Len(t, messages, 2)
		system := messages[0].(map[string]any)
		assert.Contains(t, system["content"], "venture capital")
	})

	t.Run("responses API error surfaces", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"output": [], "error": {"type": "server_error", "message": "overloaded"}}`)
		})

		_, err := client.Research(context.Background(), "o4-mini-deep-research", "research Acme")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overloaded")
	})

	t.Run("empty responses output is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"output": []}`)
		})

		_, err := client.Research(context.Background(), "o4-mini-deep-research", "research Acme")
		assert.Error(t, err)
	})
}

func TestIsReasoningModel(t *testing.T) {
	assert.True(t, isReasoningModel("o1"))
	assert.True(t, isReasoningModel("o3-mini"))
	assert.True(t, isReasoningModel("o4-mini"))
	assert.False(t, isReasoningModel("gpt-4o"))
}
