package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/aadithv/scout/internal/research"
)

// Session owns the curated target list for one interactive session. Nothing
// here survives a restart; the only cross-restart state in the system is the
// calendar auth token, which lives in the database. The session is owned by
// whoever constructs it (the server in practice), never a package singleton.
type Session struct {
	mu      sync.RWMutex
	order   []string
	targets map[string]*research.Target
}

// New creates an empty session.
func New() *Session {
	return &Session{
		targets: make(map[string]*research.Target),
	}
}

// AutoKey builds the session key for a target derived from analysis. Unique
// across the (event index, founder index) pairs of one analysis pass.
func AutoKey(eventIdx, founderIdx int) string {
	return fmt.Sprintf("event%d_founder%d", eventIdx, founderIdx)
}

// Reset clears all targets. Called when a new analysis pass replaces the
// session's working set.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.targets = make(map[string]*research.Target)
}

// Add appends a target. The target must already carry its key; adding a
// duplicate key overwrites the existing entry in place.
func (s *Session) Add(t research.Target) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.targets[t.Key]; !exists {
		s.order = append(s.order, t.Key)
	}
	copied := t
	s.targets[t.Key] = &copied
}

// AddManual creates an empty, human-editable target at the front of the list
// and returns it. Manual keys are uuid-based so they can never collide with
// auto-derived keys.
func (s *Session) AddManual() research.Target {
	t := research.Target{
		Key:       "manual_" + uuid.NewString(),
		Reasoning: "Manually added.",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = append([]string{t.Key}, s.order...)
	copied := t
	s.targets[t.Key] = &copied
	return t
}

// Get returns a copy of the target with the given key.
func (s *Session) Get(key string) (research.Target, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.targets[key]
	if !ok {
		return research.Target{}, false
	}
	return *t, true
}

// Update overwrites the stored target's editable fields. The key and any
// attached report survive the update.
func (s *Session) Update(key string, updated research.Target) (research.Target, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.targets[key]
	if !ok {
		return research.Target{}, false
	}

	updated.Key = key
	updated.Report = existing.Report
	updated.ReportModel = existing.ReportModel
	updated.ReportError = existing.ReportError
	*existing = updated
	return *existing, true
}

// Delete removes the target with the given key.
func (s *Session) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.targets[key]; !ok {
		return false
	}
	delete(s.targets, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all targets in curation order.
func (s *Session) List() []research.Target {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]research.Target, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, *s.targets[key])
	}
	return out
}

// Included returns the non-excluded targets in curation order. This is the
// set a research run processes.
func (s *Session) Included() []research.Target {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []research.Target
	for _, key := range s.order {
		if t := s.targets[key]; !t.Excluded {
			out = append(out, *t)
		}
	}
	return out
}

// SetReport attaches a research outcome to the target. Success stores the
// report text and the model that produced it; exhaustion stores the combined
// failure reasons.
func (s *Session) SetReport(key string, result research.ReportResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.targets[key]
	if !ok {
		return false
	}

	switch result.Status {
	case research.StatusSuccess:
		t.Report = result.Text
		t.ReportModel = result.ModelUsed
		t.ReportError = ""
	case research.StatusExhausted:
		t.Report = ""
		t.ReportModel = ""
		t.ReportError = formatAttempts(result.Attempts)
	}
	return true
}

// SetReportError records a pre-call failure (for example a missing company
// name) against the target.
func (s *Session) SetReportError(key, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.targets[key]
	if !ok {
		return false
	}
	t.Report = ""
	t.ReportModel = ""
	t.ReportError = message
	return true
}

func formatAttempts(attempts []research.Attempt) string {
	if len(attempts) == 0 {
		return "no candidate models available"
	}
	msg := "all models failed:"
	for _, a := range attempts {
		msg += fmt.Sprintf(" [%s: %s]", a.ModelID, a.Reason)
	}
	return msg
}
