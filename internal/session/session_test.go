package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadithv/scout/internal/research"
)

func TestAutoKey(t *testing.T) {
	assert.Equal(t, "event0_founder0", AutoKey(0, 0))
	assert.Equal(t, "event2_founder1", AutoKey(2, 1))
}

func TestSessionCRUD(t *testing.T) {
	t.Run("add and list preserve order", func(t *testing.T) {
		s := New()
		s.Add(research.Target{Key: "event0_founder0", Company: "Acme"})
		s.Add(research.Target{Key: "event0_founder1", Company: "Globex"})

		targets := s.List()
		require.Len(t, targets, 2)
		assert.Equal(t, "Acme", targets[0].Company)
		assert.Equal(t, "Globex", targets[1].Company)
	})

	t.Run("adding an existing key overwrites in place", func(t *testing.T) {
		s := New()
		s.Add(research.Target{Key: "event0_founder0", Company: "Acme"})
		s.Add(research.Target{Key: "event0_founder1", Company: "Globex"})
		s.Add(research.Target{Key: "event0_founder0", Company: "Acme Corp"})

		targets := s.List()
		require.Len(t, targets, 2)
		assert.Equal(t, "Acme Corp", targets[0].Company)
	})

	t.Run("get", func(t *testing.T) {
		s := New()
		s.Add(research.Target{Key: "event0_founder0", Company: "Acme"})

		target, ok := s.Get("event0_founder0")
		require.True(t, ok)
		assert.Equal(t, "Acme", target.Company)

		_, ok = s.Get("missing")
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		s := New()
		s.Add(research.Target{Key: "event0_founder0"})

		assert.True(t, s.Delete("event0_founder0"))
		assert.False(t, s.Delete("event0_founder0"))
		assert.Empty(t, s.List())
	})

	t.Run("reset clears everything", func(t *testing.T) {
		s := New()
		s.Add(research.Target{Key: "event0_founder0"})
		s.AddManual()

		s.Reset()
		assert.Empty(t, s.List())
	})
}

func TestAddManual(t *testing.T) {
	s := New()
	s.Add(research.Target{Key: "event0_founder0", Company: "Acme"})

	manual := s.AddManual()
	assert.True(t, strings.HasPrefix(manual.Key, "manual_"))
	assert.Equal(t, "Manually added.", manual.Reasoning)

	// Manual targets go to the front of the list.
	targets := s.List()
	require.Len(t, targets, 2)
	assert.Equal(t, manual.Key, targets[0].Key)

	// Keys never collide.
	second := s.AddManual()
	assert.NotEqual(t, manual.Key, second.Key)
}

func TestUpdate(t *testing.T) {
	t.Run("edits fields but preserves key and report", func(t *testing.T) {
		s := New()
		s.Add(research.Target{Key: "event0_founder0", Company: "Acme", Report: "# Old Report", ReportModel: "o3"})

		updated, ok := s.Update("event0_founder0", research.Target{
			Key:     "attacker-controlled",
			Company: "Acme Corp",
			Notes:   "met at demo day",
		})
		require.True(t, ok)

		assert.Equal(t, "event0_founder0", updated.Key)
		assert.Equal(t, "Acme Corp", updated.Company)
		assert.Equal(t, "met at demo day", updated.Notes)
		assert.Equal(t, "# Old Report", updated.Report)
		assert.Equal(t, "o3", updated.ReportModel)
	})

	t.Run("unknown key", func(t *testing.T) {
		s := New()
		_, ok := s.Update("missing", research.Target{})
		assert.False(t, ok)
	})
}

func TestIncluded(t *testing.T) {
	s := New()
	s.Add(research.Target{Key: "event0_founder0", Company: "Acme"})
	s.Add(research.Target{Key: "event0_founder1", Company: "Globex", Excluded: true})
	s.Add(research.Target{Key: "event1_founder0", Company: "Initech"})

	included := s.Included()
	require.Len(t, included, 2)
	assert.Equal(t, "Acme", included[0].Company)
	assert.Equal(t, "Initech", included[1].Company)
}

func TestSetReport(t *testing.T) {
	t.Run("success stores text and model", func(t *testing.T) {
		s := New()
		s.Add(research.Target{Key: "event0_founder0", Company: "Acme"})

		ok := s.SetReport("event0_founder0", research.ReportResult{
			Status:    research.StatusSuccess,
			ModelUsed: "o4-mini-deep-research",
			Text:      "# Report",
		})
		require.True(t, ok)

		target, _ := s.Get("event0_founder0")
		assert.Equal(t, "# Report", target.Report)
		assert.Equal(t, "o4-mini-deep-research", target.ReportModel)
		assert.Empty(t, target.ReportError)
	})

	t.Run("exhaustion stores combined failure reasons", func(t *testing.T) {
		s := New()
		s.Add(research.Target{Key: "event0_founder0", Company: "Acme"})

		s.SetReport("event0_founder0", research.ReportResult{
			Status: research.StatusExhausted,
			Attempts: []research.Attempt{
				{ModelID: "o4-mini-deep-research", Reason: "rate limited"},
				{ModelID: "o4-mini", Reason: "timeout"},
			},
		})

		target, _ := s.Get("event0_founder0")
		assert.Empty(t, target.Report)
		assert.Contains(t, target.ReportError, "o4-mini-deep-research: rate limited")
		assert.Contains(t, target.ReportError, "o4-mini: timeout")
	})

	t.Run("exhaustion with no attempts", func(t *testing.T) {
		s := New()
		s.Add(research.Target{Key: "event0_founder0", Company: "Acme"})

		s.SetReport("event0_founder0", research.ReportResult{Status: research.StatusExhausted})

		target, _ := s.Get("event0_founder0")
		assert.Equal(t, "no candidate models available", target.ReportError)
	})

	t.Run("unknown key", func(t *testing.T) {
		s := New()
		assert.False(t, s.SetReport("missing", research.ReportResult{}))
	})
}

func TestSetReportError(t *testing.T) {
	s := New()
	s.Add(research.Target{Key: "event0_founder0", Report: "# Stale"})

	require.True(t, s.SetReportError("event0_founder0", "company name is required for research"))

	target, _ := s.Get("event0_founder0")
	assert.Empty(t, target.Report)
	assert.Equal(t, "company name is required for research", target.ReportError)
}
