package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCandidateModels(t *testing.T) {
	t.Run("full availability ranks by tier", func(t *testing.T) {
		available := []string{"gpt-4o", "o3", "o4-mini", "o3-deep-research", "o4-mini-deep-research"}

		candidates := SelectCandidateModels(available)
		require.Len(t, candidates, 4)

		assert.Equal(t, "o4-mini-deep-research", candidates[0].ID)
		assert.Equal(t, "Deep Research (mini)", candidates[0].Label)
		assert.Equal(t, "o3-deep-research", candidates[1].ID)
		assert.Equal(t, "Deep Research", candidates[1].Label)
		assert.Equal(t, "o4-mini", candidates[2].ID)
		assert.Equal(t, "Standard (mini)", candidates[2].Label)
		assert.Equal(t, "o3", candidates[3].ID)
		assert.Equal(t, "Reasoning", candidates[3].Label)
	})

	t.Run("dated variants count as deep research", func(t *testing.T) {
		candidates := SelectCandidateModels([]string{"o4-mini-deep-research-2025-06-26"})
		require.Len(t, candidates, 1)
		assert.Equal(t, "Deep Research (mini)", candidates[0].Label)
	})

	t.Run("no tier match means no candidates", func(t *testing.T) {
		candidates := SelectCandidateModels([]string{"gpt-4o", "gpt-3.5-turbo", "whisper-1"})
		assert.Empty(t, candidates)
	})

	t.Run("each id appears once", func(t *testing.T) {
		// o4-mini-deep-research matches both deep-research tiers;
		// o1 and o1-mini both land in the reasoning tier.
		candidates := SelectCandidateModels([]string{"o4-mini-deep-research", "o1", "o1-mini"})

		seen := make(map[string]bool)
		for _, c := range candidates {
			assert.False(t, seen[c.ID], "duplicate candidate %s", c.ID)
			seen[c.ID] = true
		}
		assert.Len(t, candidates, 3)
	})

	t.Run("order is stable regardless of input order", func(t *testing.T) {
		a := SelectCandidateModels([]string{"o3", "o1", "o4-mini"})
		b := SelectCandidateModels([]string{"o4-mini", "o1", "o3"})
		assert.Equal(t, a, b)
	})

	t.Run("empty availability", func(t *testing.T) {
		assert.Empty(t, SelectCandidateModels(nil))
	})
}

func TestIsDeepResearchModel(t *testing.T) {
	assert.True(t, IsDeepResearchModel("o4-mini-deep-research"))
	assert.True(t, IsDeepResearchModel("o3-deep-research-2025-06-26"))
	assert.False(t, IsDeepResearchModel("o4-mini"))
	assert.False(t, IsDeepResearchModel("gpt-4o"))
}
