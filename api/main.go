package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/products-api/internal/config"
	"github.com/rogerio-castellano/products-api/internal/db"
	rl "github.com/rogerio-castellano/products-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/products-api/internal/http/router"
	"github.com/rogerio-castellano/products-api/internal/logger"
	"github.com/rogerio-castellano/products-api/internal/redissvc"
	"github.com/rogerio-castellano/products-api/internal/repo"
	"github.com/rs/zerolog"
)

// @title Products API
// @version 1.0.0
// @description CRUD API over the Products table.
// @host localhost:3000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "json")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("graceful shutdown complete")
}

// run connects the dependencies described by cfg and serves until ctx is
// done.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	database, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("could not connect to database at %s: %w", cfg.DB.Address(), err)
	}
	defer database.Close()

	dialect := db.DialectFor(cfg.DB.Driver)
	log.Info().
		Str("driver", cfg.DB.Driver).
		Stringer("dialect", dialect).
		Str("addr", cfg.DB.Address()).
		Str("database", cfg.DB.Name).
		Msg("database connected")

	limiter, closeLimiter, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("could not set up rate limiting: %w", err)
	}
	defer closeLimiter()

	srv := &http.Server{
		Handler: router.NewRouter(router.Deps{
			Products:          repo.NewSQLProductRepository(database, dialect, cfg.DB.QueryTimeout),
			DB:                database,
			Logger:            log,
			Limiter:           limiter,
			CORSOrigins:       cfg.CORSOrigins,
			TrustProxyHeaders: cfg.TrustProxyHeaders,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("could not listen on port %s: %w", cfg.Port, err)
	}
	return serve(ctx, srv, ln, cfg.ShutdownTimeout, log)
}

// serve runs srv on ln until ctx is done, then waits up to timeout for
// in-flight requests.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("server is up and running")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// newLimiter returns nil when rate limiting is disabled. With REDIS_ADDR set
// the limit is shared through Redis, otherwise it is kept per process.
func newLimiter(ctx context.Context, cfg *config.Config, log zerolog.Logger) (rl.Limiter, func(), error) {
	noop := func() {}
	if !cfg.RateLimit.Enabled {
		return nil, noop, nil
	}

	if cfg.Redis.Addr != "" {
		rs, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("rate limiting backed by redis")
		closeFn := func() {
			if err := rs.Close(); err != nil {
				log.Warn().Err(err).Msg("closing redis")
			}
		}
		return rl.NewRedisLimiter(rs.Rdb(), cfg.RateLimit.Requests, cfg.RateLimit.Window), closeFn, nil
	}

	limiter := rl.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop(ctx, time.Minute)
	log.Info().Msg("rate limiting kept in memory")
	return limiter, noop, nil
}
