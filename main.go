package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aadithv/scout/internal/analyzer"
	"github.com/aadithv/scout/internal/config"
	"github.com/aadithv/scout/internal/database"
	"github.com/aadithv/scout/internal/gcal"
	"github.com/aadithv/scout/internal/notify"
	"github.com/aadithv/scout/internal/openai"
	"github.com/aadithv/scout/internal/research"
	"github.com/aadithv/scout/internal/server"
	"github.com/aadithv/scout/internal/session"
	"github.com/aadithv/scout/internal/sse"
)

func main() {
	cfg := config.LoadFromEnv()

	db, err := database.New(cfg.DBPath)
	if err != nil {
		fatal("creating database", err)
	}
	defer db.Close()

	state := sse.NewState()
	sess := session.New()

	srv := server.New(server.ServerConfig{
		DB:                db,
		Session:           sess,
		State:             state,
		Port:              cfg.HTTPPort,
		DefaultCalendarID: cfg.CalendarID,
		ReportEmail:       cfg.ReportEmail,
	})

	llm := initModelBackend(cfg)
	gcalClient := initGCalClient(db, cfg)

	var (
		founderAnalyzer server.FounderAnalyzer
		backend         server.ModelBackend
		researcher      server.Researcher
	)
	if llm != nil {
		founderAnalyzer = analyzer.New(llm, analyzer.Config{
			Model:          cfg.FounderModel,
			ExcludeEmails:  cfg.ExcludeEmails,
			ExcludeDomains: cfg.ExcludeDomains,
		})
		backend = llm
		researcher = research.NewOrchestrator(llm)
	}

	srv.InitializeClients(server.ClientsConfig{
		GCalClient: gcalClient,
		Analyzer:   founderAnalyzer,
		Backend:    backend,
		Researcher: researcher,
		Notifier:   initNotifier(cfg),
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()

	waitForShutdown(srv)
}

func initModelBackend(cfg *config.Config) *openai.Client {
	if cfg.OpenAIAPIKey == "" {
		fmt.Println("Warning: OPENAI_API_KEY not set, founder analysis and research disabled")
		return nil
	}
	client := openai.NewClient(openai.Config{
		APIKey:                 cfg.OpenAIAPIKey,
		ResearchTimeoutMinutes: cfg.ResearchTimeout,
		ResearchMaxTokens:      cfg.ResearchMaxTokens,
	})
	fmt.Printf("OpenAI backend configured (founder model: %s)\n", cfg.FounderModel)
	return client
}

func initGCalClient(db *database.DB, cfg *config.Config) server.CalendarClient {
	client, err := gcal.NewClient(cfg.GoogleCredentialsFile, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Google Calendar client unavailable: %v\n", err)
		return nil
	}
	if client.IsAuthenticated() {
		fmt.Println("Google Calendar connected")
	} else {
		fmt.Println("Google Calendar not authenticated, connect via /api/auth/connect")
	}
	return client
}

func initNotifier(cfg *config.Config) *notify.ReportNotifier {
	notifier := notify.NewReportNotifier(cfg.ResendAPIKey, cfg.EmailFrom)
	if notifier == nil {
		fmt.Println("Report email delivery disabled (RESEND_API_KEY not set)")
		return nil
	}
	if cfg.ReportEmail == "" {
		fmt.Println("Warning: SCOUT_REPORT_EMAIL not set, reports will not be emailed")
	}
	return notifier
}

func waitForShutdown(srv *server.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "HTTP server shutdown error: %v\n", err)
	}

	fmt.Println("Shutdown complete")
}

func fatal(action string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", action, err)
	os.Exit(1)
}
