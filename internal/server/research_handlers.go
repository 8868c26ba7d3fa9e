package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aadithv/scout/internal/prompt"
	"github.com/aadithv/scout/internal/research"
	"github.com/aadithv/scout/internal/sse"
)

// Research API

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	if s.backend == nil {
		respondError(w, http.StatusServiceUnavailable, "Model backend not configured. Check OPENAI_API_KEY.")
		return
	}

	available, err := s.backend.ListModelIDs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list models: %v", err))
		return
	}

	candidates := research.SelectCandidateModels(available)
	if candidates == nil {
		candidates = []research.ModelCandidate{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"candidates": candidates,
	})
}

type targetRunResult struct {
	Key     string `json:"key"`
	Company string `json:"company"`
	Status  string `json:"status"`
	Model   string `json:"model,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleRunResearch runs deep research over every included target, in order,
// writing each outcome back onto its session target and streaming progress to
// SSE subscribers. The response blocks until the whole run finishes.
func (s *Server) handleRunResearch(w http.ResponseWriter, r *http.Request) {
	if s.backend == nil || s.researcher == nil {
		respondError(w, http.StatusServiceUnavailable, "Model backend not configured. Check OPENAI_API_KEY.")
		return
	}
	if s.state.IsRunning() {
		respondError(w, http.StatusConflict, "A research run is already in progress")
		return
	}

	targets := s.session.Included()
	if len(targets) == 0 {
		respondError(w, http.StatusBadRequest, "No targets selected for research")
		return
	}

	available, err := s.backend.ListModelIDs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list models: %v", err))
		return
	}
	candidates := research.SelectCandidateModels(available)

	progress := make([]sse.TargetProgress, 0, len(targets))
	for _, t := range targets {
		progress = append(progress, sse.TargetProgress{Key: t.Key, Company: t.Company})
	}
	s.state.StartRun(progress)
	defer s.state.FinishRun()

	fmt.Printf("Starting research run: %d targets, %d candidate models\n", len(targets), len(candidates))

	results := make([]targetRunResult, 0, len(targets))
	for _, target := range targets {
		s.state.SetTargetProgress(sse.TargetProgress{
			Key:     target.Key,
			Company: target.Company,
			Status:  sse.StatusRunning,
		})

		researchPrompt, err := prompt.BuildResearch(target)
		if err != nil {
			reason := err.Error()
			if errors.Is(err, prompt.ErrMissingCompanyName) {
				reason = "company name is required for research"
			}
			s.session.SetReportError(target.Key, reason)
			s.state.SetTargetProgress(sse.TargetProgress{
				Key:     target.Key,
				Company: target.Company,
				Status:  sse.StatusFailed,
				Error:   reason,
			})
			results = append(results, targetRunResult{
				Key:     target.Key,
				Company: target.Company,
				Status:  "failed",
				Error:   reason,
			})
			continue
		}

		result := s.researcher.Run(r.Context(), researchPrompt, candidates)
		s.session.SetReport(target.Key, result)

		switch result.Status {
		case research.StatusSuccess:
			fmt.Printf("Research complete for %s (model: %s)\n", target.Company, result.ModelUsed)
			s.state.SetTargetProgress(sse.TargetProgress{
				Key:     target.Key,
				Company: target.Company,
				Status:  sse.StatusDone,
				Model:   result.ModelUsed,
			})
			results = append(results, targetRunResult{
				Key:     target.Key,
				Company: target.Company,
				Status:  "done",
				Model:   result.ModelUsed,
			})
			s.emailReport(target, result)
		case research.StatusExhausted:
			updated, _ := s.session.Get(target.Key)
			fmt.Printf("Research failed for %s: %s\n", target.Company, updated.ReportError)
			s.state.SetTargetProgress(sse.TargetProgress{
				Key:     target.Key,
				Company: target.Company,
				Status:  sse.StatusFailed,
				Error:   updated.ReportError,
			})
			results = append(results, targetRunResult{
				Key:     target.Key,
				Company: target.Company,
				Status:  "failed",
				Error:   updated.ReportError,
			})
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"targets": s.session.List(),
	})
}

// emailReport sends the finished report if email delivery is configured.
// Delivery failures are logged, never surfaced to the run.
func (s *Server) emailReport(target research.Target, result research.ReportResult) {
	if s.notifier == nil || !s.notifier.IsConfigured() || s.reportEmail == "" {
		return
	}
	if err := s.notifier.SendReport(s.reportEmail, target.Company, result.Text); err != nil {
		fmt.Printf("Failed to email report for %s: %v\n", target.Company, err)
	}
}

func (s *Server) handleResearchSSE(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	// Subscribe to updates
	updates := s.state.Subscribe()
	defer s.state.Unsubscribe(updates)

	// Send initial status
	statusJSON := s.state.GetStatusJSON()
	fmt.Fprintf(w, "event: status\ndata: %s\n\n", statusJSON)
	flusher.Flush()

	// Stream updates
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", update.Type, update.Data)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}
