package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required
	OpenAIAPIKey          string
	GoogleCredentialsFile string

	// Optional with defaults
	DBPath            string
	HTTPPort          int
	CalendarID        string
	FounderModel      string
	ExcludeEmails     []string
	ExcludeDomains    []string
	ResearchTimeout   int // minutes, per model attempt
	ResearchMaxTokens int

	// Report delivery (optional)
	ResendAPIKey string
	EmailFrom    string
	ReportEmail  string
}

func LoadFromEnv() *Config {
	cfg := &Config{
		// Required
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		GoogleCredentialsFile: getEnvOrDefault("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),

		// Optional with defaults
		DBPath:            getEnvOrDefault("SCOUT_DB_PATH", "./scout.db"),
		HTTPPort:          getEnvAsIntOrDefault("SCOUT_HTTP_PORT", 8080),
		CalendarID:        getEnvOrDefault("SCOUT_CALENDAR_ID", "primary"),
		FounderModel:      getEnvOrDefault("SCOUT_FOUNDER_MODEL", "gpt-4o"),
		ExcludeEmails:     getEnvAsListOrDefault("SCOUT_EXCLUDE_EMAILS", nil),
		ExcludeDomains:    getEnvAsListOrDefault("SCOUT_EXCLUDE_DOMAINS", []string{"@peakxv.com"}),
		ResearchTimeout:   getEnvAsIntOrDefault("SCOUT_RESEARCH_TIMEOUT_MINUTES", 10),
		ResearchMaxTokens: getEnvAsIntOrDefault("SCOUT_RESEARCH_MAX_TOKENS", 40000),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    getEnvOrDefault("SCOUT_EMAIL_FROM", "scout@localhost"),
		ReportEmail:  os.Getenv("SCOUT_REPORT_EMAIL"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
