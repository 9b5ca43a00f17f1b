package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/jakecozza/djservices/internal/api/router"
	appconfig "github.com/jakecozza/djservices/internal/config"
	"github.com/jakecozza/djservices/internal/intake"
	"github.com/jakecozza/djservices/internal/notify"
	"github.com/jakecozza/djservices/internal/observability/metrics"
	"github.com/jakecozza/djservices/internal/submissions"
	"github.com/jakecozza/djservices/pkg/logging"
)

func main() {
	// Load .env if present (local development)
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.NewForEnv(cfg.LogLevel, cfg.Env)
	logger.Info("starting djservices API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"submission_source", cfg.SubmissionSource,
	)

	ctx := context.Background()

	// Postgres is optional: without it, quote requests are still accepted
	// and emailed, just not persisted.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("failed to create postgres pool, continuing without persistence", "error", err)
			pool = nil
		}
	} else {
		logger.Warn("DATABASE_URL not set, quote requests will not be persisted")
	}

	redisClient := buildRedisClient(ctx, cfg, logger)

	// Email: SendGrid when configured, otherwise a logging stub.
	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		logger.Warn("SENDGRID_API_KEY not set, using stub email sender")
		sender = notify.NewStubEmailSender(logger)
	}
	mailer := notify.NewQuoteMailer(sender, cfg.OwnerEmail, logger)

	var repo intake.Repository
	if pool != nil {
		repo = intake.NewPostgresRepository(pool)
	}

	source := buildSubmissionSource(cfg, pool, logger)
	var overrides *submissions.OverrideStore
	if redisClient != nil {
		overrides = submissions.NewOverrideStore(redisClient)
	}

	registry := prometheus.NewRegistry()
	intakeMetrics := metrics.NewIntakeMetrics(registry)

	intakeHandler := intake.NewHandler(repo, mailer, intakeMetrics, logger)
	adminService := submissions.NewService(source, overrides, logger)
	adminHandler := submissions.NewHandler(adminService, intakeMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		IntakeHandler:      intakeHandler,
		AdminHandler:       adminHandler,
		AdminToken:         cfg.AdminToken,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if pool != nil {
		pool.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Info("server stopped")
}

// buildRedisClient connects and ping-verifies Redis, returning nil when it
// isn't configured or reachable. The override store degrades gracefully.
func buildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, status overrides disabled")
		return nil
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, status overrides disabled", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// buildSubmissionSource selects the admin dashboard's backing store.
func buildSubmissionSource(cfg *appconfig.Config, pool *pgxpool.Pool, logger *logging.Logger) submissions.Source {
	switch cfg.SubmissionSource {
	case appconfig.SourceNetlify:
		source, err := submissions.NewNetlifySource(submissions.NetlifyConfig{
			BaseURL:  cfg.NetlifyAPIBase,
			APIToken: cfg.NetlifyAPIToken,
			FormID:   cfg.NetlifyFormID,
		})
		if err != nil {
			logger.Error("netlify source misconfigured, admin dashboard disabled", "error", err)
			return nil
		}
		return source
	case appconfig.SourcePostgres:
		if pool == nil {
			logger.Warn("postgres not available, admin dashboard disabled")
			return nil
		}
		return submissions.NewPostgresSource(pool)
	default:
		logger.Error("unknown submission source, admin dashboard disabled", "source", cfg.SubmissionSource)
		return nil
	}
}
