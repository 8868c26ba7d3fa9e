package sse

import (
	"encoding/json"
	"sync"
)

// TargetStatus is the research progress state of one target.
type TargetStatus string

const (
	StatusPending TargetStatus = "pending"
	StatusRunning TargetStatus = "running"
	StatusDone    TargetStatus = "done"
	StatusFailed  TargetStatus = "failed"
)

// TargetProgress is the streamed progress record for one research target.
type TargetProgress struct {
	Key     string       `json:"key"`
	Company string       `json:"company"`
	Status  TargetStatus `json:"status"`
	Model   string       `json:"model,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Update represents an SSE update event
type Update struct {
	Type string `json:"type"` // "target", "run_started", "run_finished"
	Data string `json:"data"`
}

// State tracks a research run's per-target progress for SSE streaming.
type State struct {
	mu sync.RWMutex

	Running  bool
	Progress []TargetProgress

	subscribers map[chan Update]struct{}
}

// NewState creates an empty research progress state
func NewState() *State {
	return &State{
		subscribers: make(map[chan Update]struct{}),
	}
}

// Subscribe creates a new channel for receiving updates
func (s *State) Subscribe() chan Update {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Update, 10)
	s.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscriber channel
func (s *State) Unsubscribe(ch chan Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subscribers, ch)
	close(ch)
}

// broadcast sends an update to all subscribers
func (s *State) broadcast(update Update) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.subscribers {
		select {
		case ch <- update:
		default:
			// Channel full, skip
		}
	}
}

// StartRun resets progress to pending entries for the given targets and
// broadcasts the run start.
func (s *State) StartRun(targets []TargetProgress) {
	s.mu.Lock()
	s.Running = true
	s.Progress = make([]TargetProgress, len(targets))
	copy(s.Progress, targets)
	for i := range s.Progress {
		s.Progress[i].Status = StatusPending
	}
	s.mu.Unlock()

	s.broadcast(Update{Type: "run_started", Data: "{}"})
}

// SetTargetProgress updates one target's progress and broadcasts it.
func (s *State) SetTargetProgress(p TargetProgress) {
	s.mu.Lock()
	for i := range s.Progress {
		if s.Progress[i].Key == p.Key {
			s.Progress[i] = p
			break
		}
	}
	s.mu.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	s.broadcast(Update{Type: "target", Data: string(data)})
}

// FinishRun marks the run complete and broadcasts it.
func (s *State) FinishRun() {
	s.mu.Lock()
	s.Running = false
	s.mu.Unlock()

	s.broadcast(Update{Type: "run_finished", Data: "{}"})
}

// IsRunning reports whether a research run is in progress.
func (s *State) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Running
}

// Snapshot returns the current progress list.
func (s *State) Snapshot() []TargetProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TargetProgress, len(s.Progress))
	copy(out, s.Progress)
	return out
}

// GetStatusJSON returns the current state as JSON for the initial SSE frame.
func (s *State) GetStatusJSON() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := struct {
		Running  bool             `json:"running"`
		Progress []TargetProgress `json:"progress"`
	}{
		Running:  s.Running,
		Progress: s.Progress,
	}

	data, err := json.Marshal(status)
	if err != nil {
		return "{}"
	}
	return string(data)
}
