package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aadithv/scout/internal/analyzer"
	"github.com/aadithv/scout/internal/gcal"
	"github.com/aadithv/scout/internal/research"
	"github.com/aadithv/scout/internal/session"
)

// Meetings API

type analyzeMeetingsRequest struct {
	Date       string `json:"date"`        // YYYY-MM-DD, defaults to today
	CalendarID string `json:"calendar_id"` // defaults to the configured calendar
}

type meetingError struct {
	EventTitle string `json:"event_title"`
	Error      string `json:"error"`
}

// handleAnalyzeMeetings fetches the day's events, runs founder identification
// on each, and replaces the session's target list with the results. A parse or
// model failure on one meeting is reported alongside the others' results
// rather than aborting the pass.
func (s *Server) handleAnalyzeMeetings(w http.ResponseWriter, r *http.Request) {
	if s.gcalClient == nil || !s.gcalClient.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "Google Calendar not authenticated. Please re-authenticate.")
		return
	}
	if s.analyzer == nil {
		respondError(w, http.StatusServiceUnavailable, "Model backend not configured. Check OPENAI_API_KEY.")
		return
	}

	var req analyzeMeetingsRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Now().Location())
		if err != nil {
			respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = s.defaultCalendarID
	}

	events, err := s.gcalClient.ListEventsForDate(calendarID, date)
	if err != nil {
		if errors.Is(err, gcal.ErrNotAuthenticated) {
			respondError(w, http.StatusUnauthorized, "Google Calendar not authenticated. Please re-authenticate.")
			return
		}
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch events: %v", err))
		return
	}

	fmt.Printf("Analyzing %d events on %s\n", len(events), date.Format("2006-01-02"))

	// A fresh analysis replaces the previous working set.
	s.session.Reset()

	var meetingErrors []meetingError
	for i, event := range events {
		candidates, err := s.analyzer.AnalyzeMeeting(r.Context(), meetingFromEvent(event))
		if err != nil {
			fmt.Printf("Error analyzing %q: %v\n", event.Summary, err)
			meetingErrors = append(meetingErrors, meetingError{
				EventTitle: event.Summary,
				Error:      err.Error(),
			})
			continue
		}

		for j, c := range candidates {
			s.session.Add(research.Target{
				Key:        session.AutoKey(i, j),
				EventTitle: event.Summary,
				EventTime:  event.StartTime.Format(time.RFC3339),
				Name:       c.Name,
				Email:      c.Email,
				Company:    c.Company,
				IsFounder:  c.IsFounder,
				Reasoning:  c.Reasoning,
			})
		}
	}

	targets := s.session.List()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"meetings_analyzed": len(events),
		"targets":           targets,
		"errors":            meetingErrors,
	})
}

func meetingFromEvent(event gcal.EventDetails) analyzer.Meeting {
	attendees := make([]research.Attendee, 0, len(event.Attendees))
	for _, p := range event.Attendees {
		attendees = append(attendees, research.Attendee{
			Name:  personName(p),
			Email: p.Email,
		})
	}

	var organizer *research.Attendee
	if event.Organizer != nil {
		organizer = &research.Attendee{
			Name:  personName(*event.Organizer),
			Email: event.Organizer.Email,
		}
	}

	return analyzer.Meeting{
		Title:       event.Summary,
		Description: event.Description,
		StartTime:   event.StartTime.Format(time.RFC3339),
		Organizer:   organizer,
		Attendees:   attendees,
	}
}

func personName(p gcal.EventPerson) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Email
}
