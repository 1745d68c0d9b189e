package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone database for minimal images and Lambda

	"github.com/joho/godotenv"
)

// Mail drivers
const (
	MailDriverSMTP   = "smtp"
	MailDriverMemory = "memory"
)

type Config struct {
	Port       string
	AppEnv     string
	LogLevel   string
	CORSOrigin string
	DBUrl      string
	// SMTP Configuration (Gmail by default)
	SMTPHost        string
	SMTPPort        string
	SMTPSecure      bool
	SMTPUser        string
	SMTPPass        string
	SMTPFromName    string
	SMTPMaxAttempts int
	MailDriver      string
	// Gmail OAuth2, replaces SMTP_PASS when all three are present
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRefreshToken string
	// Hire team form
	TeamInbox        string
	StudioName       string
	DisplayTimezone  string
	WhatsAppToNumber string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowMinutes int
	RateLimitMax           int
	// Admin API
	AdminJWTSecret string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; a missing .env file is ignored
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		AppEnv:     getEnv("APP_ENV", "production"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CORSOrigin: strings.TrimRight(getEnv("CORS_ORIGIN", "*"), "/"),
		DBUrl:      getEnv("DATABASE_URL", ""),
		// SMTP Configuration
		SMTPHost:        getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPSecure:      getEnvBool("SMTP_SECURE", false),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPass:        getEnv("SMTP_PASS", ""),
		SMTPFromName:    getEnv("SMTP_FROM_NAME", ""),
		SMTPMaxAttempts: getEnvInt("SMTP_MAX_ATTEMPTS", 3),
		MailDriver:      strings.ToLower(getEnv("MAIL_DRIVER", MailDriverSMTP)),
		// OAuth2
		OAuthClientID:     getEnv("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("OAUTH_CLIENT_SECRET", ""),
		OAuthRefreshToken: getEnv("OAUTH_REFRESH_TOKEN", ""),
		// Hire team form
		TeamInbox:        getEnv("TEAM_INBOX", ""),
		StudioName:       getEnv("STUDIO_NAME", "CaveBeat"),
		DisplayTimezone:  getEnv("DISPLAY_TIMEZONE", "UTC"),
		WhatsAppToNumber: getEnv("WHATSAPP_TO_NUMBER", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (100 requests per 15 minutes)
		RateLimitWindowMinutes: getEnvInt("RATE_LIMIT_WINDOW", 15),
		RateLimitMax:           getEnvInt("RATE_LIMIT_MAX", 100),
		// Admin API
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}

	// The team inbox defaults to the sending account
	if cfg.TeamInbox == "" {
		cfg.TeamInbox = cfg.SMTPUser
	}

	if cfg.MailDriver == MailDriverSMTP && cfg.SMTPUser == "" {
		slog.Warn("SMTP_USER is missing. Hire team submissions will be rejected as unavailable.")
	}
	if cfg.UpstashRedisURL == "" {
		slog.Warn("UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsDevelopment reports whether internal error details may be exposed
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// Location resolves DISPLAY_TIMEZONE, falling back to UTC for unknown zones
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		slog.Warn("Unknown DISPLAY_TIMEZONE, using UTC", "timezone", c.DisplayTimezone, "error", err)
		return time.UTC
	}
	return loc
}

// RateLimitWindow returns the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
