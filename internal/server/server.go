package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aadithv/scout/internal/analyzer"
	"github.com/aadithv/scout/internal/database"
	"github.com/aadithv/scout/internal/gcal"
	"github.com/aadithv/scout/internal/notify"
	"github.com/aadithv/scout/internal/research"
	"github.com/aadithv/scout/internal/session"
	"github.com/aadithv/scout/internal/sse"
)

// CalendarClient is the calendar collaborator as the server consumes it.
type CalendarClient interface {
	IsAuthenticated() bool
	GetAuthURL() string
	ExchangeCode(ctx context.Context, code string) error
	Disconnect() error
	ListEventsForDate(calendarID string, date time.Time) ([]gcal.EventDetails, error)
	ListCalendars() ([]gcal.CalendarInfo, error)
}

// FounderAnalyzer runs founder identification for one meeting.
type FounderAnalyzer interface {
	AnalyzeMeeting(ctx context.Context, m analyzer.Meeting) ([]research.FounderCandidate, error)
}

// ModelBackend exposes model availability for research runs.
type ModelBackend interface {
	ListModelIDs(ctx context.Context) ([]string, error)
}

// Researcher runs the model-fallback loop for one target's prompt.
type Researcher interface {
	Run(ctx context.Context, prompt string, candidates []research.ModelCandidate) research.ReportResult
}

type Server struct {
	db         *database.DB
	session    *session.Session
	gcalClient CalendarClient
	analyzer   FounderAnalyzer
	backend    ModelBackend
	researcher Researcher
	state      *sse.State
	notifier   *notify.ReportNotifier

	httpSrv           *http.Server
	port              int
	defaultCalendarID string
	reportEmail       string
}

// ServerConfig holds configuration for server creation
type ServerConfig struct {
	DB                *database.DB
	Session           *session.Session
	State             *sse.State
	Port              int
	DefaultCalendarID string
	ReportEmail       string
}

// ClientsConfig holds the collaborators wired in after construction
type ClientsConfig struct {
	GCalClient CalendarClient
	Analyzer   FounderAnalyzer
	Backend    ModelBackend
	Researcher Researcher
	Notifier   *notify.ReportNotifier
}

func New(cfg ServerConfig) *Server {
	s := &Server{
		db:                cfg.DB,
		session:           cfg.Session,
		state:             cfg.State,
		port:              cfg.Port,
		defaultCalendarID: cfg.DefaultCalendarID,
		reportEmail:       cfg.ReportEmail,
	}
	if s.session == nil {
		s.session = session.New()
	}
	if s.state == nil {
		s.state = sse.NewState()
	}
	if s.defaultCalendarID == "" {
		s.defaultCalendarID = "primary"
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     s.corsMiddleware(mux),
		ReadTimeout: 15 * time.Second,
		// Research runs block the response for the duration of the model
		// calls, so no write timeout here.
		IdleTimeout: 60 * time.Second,
	}

	return s
}

// InitializeClients completes server initialization with the external collaborators
func (s *Server) InitializeClients(cfg ClientsConfig) {
	s.gcalClient = cfg.GCalClient
	s.analyzer = cfg.Analyzer
	s.backend = cfg.Backend
	s.researcher = cfg.Researcher
	s.notifier = cfg.Notifier
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", s.handleHealthCheck)

	// Google Calendar auth API
	mux.HandleFunc("GET /api/auth/status", s.handleAuthStatus)
	mux.HandleFunc("POST /api/auth/connect", s.handleAuthConnect)
	mux.HandleFunc("POST /api/auth/callback", s.handleAuthExchangeCode)
	mux.HandleFunc("POST /api/auth/disconnect", s.handleAuthDisconnect)
	mux.HandleFunc("GET /oauth/callback", s.handleOAuthCallback)

	// Calendars API
	mux.HandleFunc("GET /api/calendars", s.handleListCalendars)

	// Meetings API
	mux.HandleFunc("POST /api/meetings/analyze", s.handleAnalyzeMeetings)

	// Research targets API
	mux.HandleFunc("GET /api/targets", s.handleListTargets)
	mux.HandleFunc("POST /api/targets", s.handleAddManualTarget)
	mux.HandleFunc("PUT /api/targets/{key}", s.handleUpdateTarget)
	mux.HandleFunc("DELETE /api/targets/{key}", s.handleDeleteTarget)
	mux.HandleFunc("GET /api/targets/review", s.handleReviewTargets)

	// Research API
	mux.HandleFunc("GET /api/models", s.handleListModels)
	mux.HandleFunc("POST /api/research/run", s.handleRunResearch)
	mux.HandleFunc("GET /api/research/stream", s.handleResearchSSE)
}

func (s *Server) Start() error {
	fmt.Printf("Starting HTTP server on http://localhost:%d\n", s.port)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds CORS headers to allow front-end requests
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
