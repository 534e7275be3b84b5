package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/catalog"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres"
	progressrepo "github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres/progress"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres/reviewlog"
	userrepo "github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres/user"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres/vocab"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/auth"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/config"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/metrics"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/service/progress"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/transport/middleware"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	handler, cleanup := buildHandler(cfg, logger, pool, m)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// NewProgressService wires the progress service over pool. m may be nil.
func NewProgressService(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, m *metrics.Metrics) *progress.Service {
	var rm progressMetrics
	if m != nil {
		rm = m
	}
	return progress.NewService(
		logger,
		progressrepo.New(pool),
		reviewlog.New(pool),
		userrepo.New(pool),
		catalog.New(vocab.New(pool)),
		postgres.NewTxManager(pool),
		rm,
		progress.Config{
			RecentActivityLimit: cfg.Progress.RecentActivityLimit,
			HistoryMaxLimit:     cfg.Progress.HistoryMaxLimit,
		},
	)
}

// progressMetrics keeps a nil *metrics.Metrics from becoming a non-nil
// interface value.
type progressMetrics interface {
	ReviewRecorded(correct bool, levelFrom, levelTo, maxLevel int)
}

// buildHandler wires repositories, services and transport into the root
// HTTP handler. The returned func releases background resources.
func buildHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, m *metrics.Metrics) (http.Handler, func()) {
	progressSvc := NewProgressService(cfg, logger, pool, m)

	routes := rest.Routes{
		Progress: rest.NewProgressHandler(progressSvc, logger),
		Health: rest.NewHealthHandler(logger, BuildVersion(), rest.Check{
			Name: "database",
			Ping: pool.Ping,
		}),
	}
	if m != nil {
		routes.Metrics = m.Handler()
		routes.MetricsPath = cfg.Metrics.Path
	}
	mux := rest.NewRouter(routes)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var metricsMW middleware.Middleware
	if m != nil {
		metricsMW = middleware.Metrics(m, middleware.MuxRoute(mux))
	}

	var rateLimitMW middleware.Middleware
	cleanup := func() {}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSec, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		rateLimitMW = rl.Middleware()
		cleanup = rl.Stop
	}

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		metricsMW,
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		rateLimitMW,
	)
	return chain(mux), cleanup
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if err, ok := <-errCh; ok && err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
