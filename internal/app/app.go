// Package app wires configuration into the hire team usecase and its
// optional backing services. Both the HTTP server and the function
// entrypoint start from here.
package app

import (
	"context"
	"log/slog"

	"cavebeat-backend/config"
	"cavebeat-backend/internal/domain"
	"cavebeat-backend/internal/repository/postgres"
	"cavebeat-backend/internal/usecase"
	"cavebeat-backend/pkg/database"
	"cavebeat-backend/pkg/email"
	"cavebeat-backend/pkg/notify"
	"cavebeat-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type App struct {
	HireTeamUC domain.HireTeamUsecase
	HealthUC   usecase.HealthUsecase
	Redis      *goredis.Client // nil when not configured
	DB         *pgxpool.Pool   // nil when not configured
}

// New builds the application graph. Redis and Postgres are optional: a
// failure to reach either is logged and the feature it backs is disabled.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) *App {
	a := &App{}
	pingers := map[string]usecase.Pinger{}

	if cfg.UpstashRedisURL != "" {
		client, err := redis.Connect(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			a.Redis = client
			pingers["redis"] = func(ctx context.Context) error { return redis.HealthCheck(ctx, client) }
		}
	}

	var repo domain.SubmissionRepository
	if cfg.DBUrl != "" {
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Warn("Database unavailable, submission archive disabled", "error", err)
		} else {
			a.DB = pool
			repo = postgres.NewSubmissionRepository(pool)
			pingers["database"] = pool.Ping
		}
	}

	a.HireTeamUC = usecase.NewHireTeamUsecase(usecase.HireTeamDeps{
		Composer: usecase.NewMessageComposer(usecase.ComposerConfig{
			StudioName: cfg.StudioName,
			FromName:   cfg.SMTPFromName,
			TeamInbox:  cfg.TeamInbox,
			Location:   cfg.Location(),
		}),
		Transport:    NewTransport(cfg, logger),
		Repository:   repo,
		Notifier:     notify.NewLogNotifier(cfg.WhatsAppToNumber, logger),
		Logger:       logger,
		ExposeErrors: cfg.IsDevelopment(),
	})
	a.HealthUC = usecase.NewHealthUsecase(cfg.AppEnv, pingers)
	return a
}

// NewTransport picks the mail transport for cfg.MailDriver.
func NewTransport(cfg *config.Config, logger *slog.Logger) domain.MailTransport {
	if cfg.MailDriver == config.MailDriverMemory {
		logger.Warn("MAIL_DRIVER=memory, emails are logged and not sent")
		return email.NewMemoryTransport(logger)
	}
	transport := email.NewSMTPTransport(SMTPConfig(cfg))
	if !transport.IsConfigured() {
		logger.Warn("Email service not fully configured - hire team form will be unavailable")
	}
	return transport
}

// SMTPConfig maps the SMTP_* and OAUTH_* settings onto the transport config.
func SMTPConfig(cfg *config.Config) email.Config {
	return email.Config{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Secure:      cfg.SMTPSecure,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPass,
		MaxAttempts: cfg.SMTPMaxAttempts,
		OAuth: email.OAuthConfig{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RefreshToken: cfg.OAuthRefreshToken,
		},
	}
}

// Close releases the optional connections.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
