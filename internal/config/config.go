package config

import (
	"os"
	"strconv"
	"strings"
)

// SubmissionSourceKind selects which backing store the admin dashboard reads.
const (
	SourcePostgres = "postgres"
	SourceNetlify  = "netlify"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// AdminToken protects /admin endpoints with a static bearer check.
	// Empty disables the check (local development only).
	AdminToken string

	// SubmissionSource is "postgres" or "netlify".
	SubmissionSource string

	NetlifyAPIToken string
	NetlifyFormID   string
	NetlifyAPIBase  string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// OwnerEmail receives the new-quote notification.
	OwnerEmail string

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		SubmissionSource: strings.ToLower(strings.TrimSpace(getEnv("SUBMISSION_SOURCE", SourcePostgres))),

		NetlifyAPIToken: getEnv("NETLIFY_API_TOKEN", ""),
		NetlifyFormID:   getEnv("NETLIFY_FORM_ID", ""),
		NetlifyAPIBase:  getEnv("NETLIFY_API_BASE", "https://api.netlify.com/api/v1"),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "noreply@jakecozzadj.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Jake Cozza DJ Services"),

		OwnerEmail: getEnv("OWNER_EMAIL", "jakecozza.dj@gmail.com"),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", "*"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping blanks.
func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
