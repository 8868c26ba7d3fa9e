// Package main provides a test server for E2E testing the front-end.
// This server runs with in-memory SQLite, a canned calendar, and a stub
// model backend, so no Google or OpenAI credentials are needed.
//
// Usage:
//
//	go run cmd/testserver/main.go
//
// The server exposes additional test control endpoints:
//   - POST /api/test/reset       - Clear the session's targets
//   - POST /api/test/seed-event  - Add a calendar event for today
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/aadithv/scout/internal/analyzer"
	"github.com/aadithv/scout/internal/config"
	"github.com/aadithv/scout/internal/database"
	"github.com/aadithv/scout/internal/gcal"
	"github.com/aadithv/scout/internal/research"
	"github.com/aadithv/scout/internal/server"
	"github.com/aadithv/scout/internal/session"
	"github.com/aadithv/scout/internal/sse"
)

func main() {
	fmt.Println("Starting Scout Test Server...")
	fmt.Println("This server uses in-memory SQLite, a canned calendar, and a stub model backend.")

	cfg := config.LoadFromEnv()

	db, err := database.New(":memory:")
	if err != nil {
		fmt.Printf("Failed to create database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("In-memory database initialized")

	state := sse.NewState()
	sess := session.New()

	calendar := newStubCalendar()
	backend := &stubBackend{}

	srv := server.New(server.ServerConfig{
		DB:                db,
		Session:           sess,
		State:             state,
		Port:              cfg.HTTPPort,
		DefaultCalendarID: cfg.CalendarID,
	})

	srv.InitializeClients(server.ClientsConfig{
		GCalClient: calendar,
		Analyzer: analyzer.New(backend, analyzer.Config{
			Model:          cfg.FounderModel,
			ExcludeEmails:  cfg.ExcludeEmails,
			ExcludeDomains: cfg.ExcludeDomains,
		}),
		Backend:    backend,
		Researcher: research.NewOrchestrator(backend),
	})

	testMux := http.NewServeMux()
	mainHandler := srv.Handler()

	testMux.HandleFunc("POST /api/test/reset", func(w http.ResponseWriter, r *http.Request) {
		fmt.Println("Resetting test session...")
		sess.Reset()
		calendar.reset()
		respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	})

	testMux.HandleFunc("POST /api/test/seed-event", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			AttendeeName  string `json:"attendee_name"`
			AttendeeEmail string `json:"attendee_email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Title == "" {
			req.Title = "Intro call"
		}

		calendar.addEvent(req.Title, req.Description, req.AttendeeName, req.AttendeeEmail)
		fmt.Printf("Seeded event: %s\n", req.Title)
		respondJSON(w, http.StatusCreated, map[string]string{"status": "seeded"})
	})

	// Fallback to main handler
	testMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		mainHandler.ServeHTTP(w, r)
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      testMux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("\nTest Server running on http://localhost:%d\n", cfg.HTTPPort)
		fmt.Println("\nTest endpoints:")
		fmt.Println("  POST /api/test/reset      - Clear the session's targets")
		fmt.Println("  POST /api/test/seed-event - Add a calendar event for today")
		fmt.Println("\nPress Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down test server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("Shutdown error: %v\n", err)
	}

	fmt.Println("Test server stopped")
}

// stubCalendar is always authenticated and serves in-memory events for today.
type stubCalendar struct {
	mu     sync.Mutex
	events []gcal.EventDetails
}

func newStubCalendar() *stubCalendar {
	sc := &stubCalendar{}
	sc.addEvent(
		"Coffee chat with Acme founders",
		"Intro to the Acme team ahead of their seed round.",
		"Jane Doe",
		"jane@acme.com",
	)
	return sc
}

func (sc *stubCalendar) addEvent(title, description, attendeeName, attendeeEmail string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var attendees []gcal.EventPerson
	if attendeeEmail != "" {
		attendees = append(attendees, gcal.EventPerson{
			Email:       attendeeEmail,
			DisplayName: attendeeName,
		})
	}

	sc.events = append(sc.events, gcal.EventDetails{
		ID:          fmt.Sprintf("test-event-%d", len(sc.events)+1),
		Summary:     title,
		Description: description,
		StartTime:   time.Now().Truncate(time.Hour),
		CalendarID:  "primary",
		Attendees:   attendees,
	})
}

func (sc *stubCalendar) reset() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.events = nil
}

func (sc *stubCalendar) IsAuthenticated() bool                        { return true }
func (sc *stubCalendar) GetAuthURL() string                           { return "https://example.com/auth" }
func (sc *stubCalendar) ExchangeCode(ctx context.Context, code string) error { return nil }
func (sc *stubCalendar) Disconnect() error                            { return nil }

func (sc *stubCalendar) ListEventsForDate(calendarID string, date time.Time) ([]gcal.EventDetails, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	out := make([]gcal.EventDetails, len(sc.events))
	copy(out, sc.events)
	return out, nil
}

func (sc *stubCalendar) ListCalendars() ([]gcal.CalendarInfo, error) {
	return []gcal.CalendarInfo{{ID: "primary", Summary: "Test Calendar", Primary: true}}, nil
}

// stubBackend answers founder identification with a canned verdict for every
// attendee mentioned in the prompt and research with a short canned report.
type stubBackend struct{}

func (b *stubBackend) ListModelIDs(ctx context.Context) ([]string, error) {
	return []string{"o4-mini-deep-research", "o4-mini", "gpt-4o"}, nil
}

func (b *stubBackend) IdentifyFounders(ctx context.Context, model, founderPrompt string) (string, error) {
	var candidates []research.FounderCandidate
	for _, line := range strings.Split(founderPrompt, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") || !strings.Contains(line, "<") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(line[:strings.Index(line, "<")], "- "))
		email := strings.TrimSuffix(line[strings.Index(line, "<")+1:], ">")
		candidates = append(candidates, research.FounderCandidate{
			Name:      name,
			Email:     email,
			IsFounder: "Y",
			Company:   "Acme",
			Reasoning: "Stub verdict for testing.",
		})
	}

	data, err := json.Marshal(candidates)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (b *stubBackend) Research(ctx context.Context, modelID, researchPrompt string) (string, error) {
	return fmt.Sprintf("# Test Report\n\nCanned research output from %s.", modelID), nil
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
