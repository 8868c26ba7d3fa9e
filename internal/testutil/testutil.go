package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aadithv/scout/internal/analyzer"
	"github.com/aadithv/scout/internal/database"
	"github.com/aadithv/scout/internal/mocks"
	"github.com/aadithv/scout/internal/research"
	"github.com/aadithv/scout/internal/server"
	"github.com/aadithv/scout/internal/session"
	"github.com/aadithv/scout/internal/sse"
)

// TestServer wraps a fully wired server for E2E testing. The model backend is
// a testify mock; the analyzer and orchestrator are the real ones so the full
// prompt/extract/fallback path is exercised.
type TestServer struct {
	Server     *server.Server
	DB         *database.DB
	Session    *session.Session
	State      *sse.State
	HTTPServer *httptest.Server

	CalendarMock *mocks.MockCalendarClient
	ModelMock    *mocks.MockModelBackend

	t *testing.T
}

// NewTestServer creates a fully configured test server for E2E testing
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	t.Setenv("SCOUT_ENCRYPTION_KEY", "test-encryption-key")

	db, err := database.New(":memory:")
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { db.Close() })

	sess := session.New()
	state := sse.NewState()

	srv := server.New(server.ServerConfig{
		DB:      db,
		Session: sess,
		State:   state,
	})

	calendarMock := &mocks.MockCalendarClient{}
	modelMock := &mocks.MockModelBackend{}

	srv.InitializeClients(server.ClientsConfig{
		GCalClient: calendarMock,
		Analyzer: analyzer.New(modelMock, analyzer.Config{
			Model:          "gpt-4o",
			ExcludeDomains: []string{"@peakxv.com"},
		}),
		Backend:    modelMock,
		Researcher: research.NewOrchestrator(modelMock),
	})

	httpServer := httptest.NewServer(srv.Handler())
	t.Cleanup(httpServer.Close)

	return &TestServer{
		Server:       srv,
		DB:           db,
		Session:      sess,
		State:        state,
		HTTPServer:   httpServer,
		CalendarMock: calendarMock,
		ModelMock:    modelMock,
		t:            t,
	}
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.HTTPServer.URL
}
