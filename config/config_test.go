package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SMTP_USER", "studio@cavebeat.test")
	t.Setenv("TEAM_INBOX", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, "CaveBeat", cfg.StudioName)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow())
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, "studio@cavebeat.test", cfg.TeamInbox)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "Development")
	t.Setenv("SMTP_SECURE", "true")
	t.Setenv("SMTP_MAX_ATTEMPTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "not-a-number")
	t.Setenv("MAIL_DRIVER", "MEMORY")
	t.Setenv("CORS_ORIGIN", "https://cavebeat.test/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.SMTPSecure)
	assert.Equal(t, 5, cfg.SMTPMaxAttempts)
	assert.Equal(t, 15, cfg.RateLimitWindowMinutes)
	assert.Equal(t, MailDriverMemory, cfg.MailDriver)
	assert.Equal(t, "https://cavebeat.test", cfg.CORSOrigin)
}

func TestLocation(t *testing.T) {
	cfg := &Config{DisplayTimezone: "Asia/Kolkata"}
	loc := cfg.Location()
	_, offset := time.Date(2026, 3, 4, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 5*3600+1800, offset)

	cfg.DisplayTimezone = "Mars/Olympus"
	assert.Equal(t, time.UTC, cfg.Location())
}
