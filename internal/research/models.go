package research

import (
	"sort"
	"strings"
)

// Model selection preference, most capable/specialized first. Within a tier
// the available ids are taken in sorted order so the sequence is stable for a
// given availability set.
const (
	miniDeepResearchPrefix = "o4-mini-deep-research"
	deepResearchSubstring  = "deep-research"
	standardMiniModel      = "o4-mini"
)

var reasoningTierSubstrings = []string{"o3", "o1"}

// IsDeepResearchModel reports whether a model id names a deep-research variant,
// which takes the tool-augmented call shape rather than a plain chat completion.
func IsDeepResearchModel(id string) bool {
	return strings.Contains(id, deepResearchSubstring)
}

// SelectCandidateModels ranks the available model ids into the research
// fallback sequence: the specialized mini deep-research variant first, then any
// other deep-research-capable model, then the standard mini model, then
// remaining reasoning-tier models. Ids that match no tier are not candidates.
// An empty result means no usable model is available.
func SelectCandidateModels(available []string) []ModelCandidate {
	ids := make([]string, len(available))
	copy(ids, available)
	sort.Strings(ids)

	used := make(map[string]bool)
	var candidates []ModelCandidate

	add := func(id, label string) {
		if used[id] {
			return
		}
		used[id] = true
		candidates = append(candidates, ModelCandidate{ID: id, Label: label})
	}

	for _, id := range ids {
		if strings.Contains(id, miniDeepResearchPrefix) {
			add(id, "Deep Research (mini)")
		}
	}
	for _, id := range ids {
		if strings.Contains(id, deepResearchSubstring) {
			add(id, "Deep Research")
		}
	}
	for _, id := range ids {
		if id == standardMiniModel {
			add(id, "Standard (mini)")
		}
	}
	for _, id := range ids {
		for _, sub := range reasoningTierSubstrings {
			if strings.Contains(id, sub) {
				add(id, "Reasoning")
				break
			}
		}
	}

	return candidates
}
