package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFounderCandidates(t *testing.T) {
	t.Run("array wrapped in prose", func(t *testing.T) {
		raw := `Here are the results:
[{"name": "Jane Doe", "email": "jane@acme.com", "is_founder": "Y", "company": "Acme", "reasoning": "Domain matches company name."}]
Let me know if you need more.`

		candidates, err := ExtractFounderCandidates(raw)
		require.NoError(t, err)
		require.Len(t, candidates, 1)

		assert.Equal(t, "Jane Doe", candidates[0].Name)
		assert.Equal(t, "jane@acme.com", candidates[0].Email)
		assert.Equal(t, "Y", candidates[0].IsFounder)
		assert.Equal(t, "Acme", candidates[0].Company)
	})

	t.Run("no brackets means no founders", func(t *testing.T) {
		candidates, err := ExtractFounderCandidates("no brackets here")
		assert.NoError(t, err)
		assert.Nil(t, candidates)
	})

	t.Run("empty array", func(t *testing.T) {
		candidates, err := ExtractFounderCandidates("Nobody qualifies: []")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("unterminated array is a parse error", func(t *testing.T) {
		_, err := ExtractFounderCandidates("[not json")

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Snippet, "not json")
	})

	t.Run("bracketed non-json is a parse error", func(t *testing.T) {
		_, err := ExtractFounderCandidates("[not json]")

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("missing keys get defaults", func(t *testing.T) {
		candidates, err := ExtractFounderCandidates(`[{"name": "Jane Doe"}]`)
		require.NoError(t, err)
		require.Len(t, candidates, 1)

		assert.Equal(t, IsFounderUnknown, candidates[0].IsFounder)
		assert.Empty(t, candidates[0].Company)
		assert.Empty(t, candidates[0].Reasoning)
	})

	t.Run("non-string values are dropped to defaults", func(t *testing.T) {
		candidates, err := ExtractFounderCandidates(`[{"name": 42, "is_founder": true}]`)
		require.NoError(t, err)
		require.Len(t, candidates, 1)

		assert.Empty(t, candidates[0].Name)
		assert.Equal(t, IsFounderUnknown, candidates[0].IsFounder)
	})

	t.Run("markdown fenced array", func(t *testing.T) {
		raw := "```json\n[{\"name\": \"Jane\", \"is_founder\": \"N\"}]\n```"

		candidates, err := ExtractFounderCandidates(raw)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "N", candidates[0].IsFounder)
	})
}
