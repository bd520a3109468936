package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/stopbook/backend/internal/catalog"
	"github.com/stopbook/backend/internal/config"
	"github.com/stopbook/backend/internal/handler"
	"github.com/stopbook/backend/internal/identity"
	"github.com/stopbook/backend/internal/middleware"
	"github.com/stopbook/backend/internal/schedule"
	"github.com/stopbook/backend/internal/service"
	"github.com/stopbook/backend/internal/session"
	"github.com/stopbook/backend/spec"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "run the HTTP API",
		Action: serve,
		Flags:  []cli.Flag{migrateFlag()},
	}
}

func migrateFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "migrate",
		Usage: "apply pending migrations before serving",
		Value: true,
	}
}

func serve(c *cli.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ----------------------------------------------------------
	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	if c.Bool("migrate") {
		if err := st.migrateUp(ctx, logger); err != nil {
			return err
		}
	}

	// --- Reference data ---------------------------------------------------
	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	dirs, err := schedule.LoadDirections()
	if err != nil {
		return err
	}
	loc := cfg.Location()

	// --- Schedule service -------------------------------------------------
	var source schedule.Source = schedule.NewClient(cfg.ScheduleAPIURL,
		schedule.WithTimeout(cfg.ScheduleTimeout),
		schedule.WithBudget(cfg.ScheduleBudget),
		schedule.WithMaxRetries(cfg.ScheduleMaxRetries),
		schedule.WithLogger(logger),
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			// The cache is optional; lookups fall through while Redis is down.
			logger.Warn("redis unreachable, schedule cache degraded", "addr", cfg.RedisAddr, "error", err)
		}
		source = schedule.NewCachedSource(source, schedule.NewRedisCache(rdb), cfg.ScheduleCacheTTL, logger)
		logger.Info("schedule cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.ScheduleCacheTTL.String())
	}
	shaper := schedule.NewShaper(source, cat, dirs, logger)

	// --- Services ---------------------------------------------------------
	reservations := service.NewReservationService(st.repo, cat, logger,
		service.WithLocation(loc),
		service.WithArrivingSoonWindow(cfg.ArrivingSoonWindow),
	)
	search := service.NewSearchService(shaper, cat, loc, time.Now)
	store := session.NewStore(cat, cfg.SessionIdleTimeout)
	go store.Run(ctx, time.Minute, logger)
	sessions := service.NewSessionService(store, search, reservations, logger)
	export := service.NewExportService(st.repo, cat, loc, time.Now)

	server := handler.NewServer(handler.Deps{
		Catalog:      cat,
		Search:       search,
		Sessions:     sessions,
		Reservations: reservations,
		Export:       export,
		OpenAPI:      spec.OpenAPI,
		Log:          logger,
	})

	auth, err := identityMiddleware(cfg, logger)
	if err != nil {
		return err
	}
	staff, err := staffMiddleware(cfg, logger)
	if err != nil {
		return err
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → rider identity → staff identity.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(auth)
	r.Use(staff)
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// config.Load keeps the schedule lookup budget below WriteTimeout.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "storage", cfg.Storage, "auth", cfg.AuthMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown: wait for a signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// identityMiddleware selects how riders are identified.
func identityMiddleware(cfg config.Config, log *slog.Logger) (func(http.Handler) http.Handler, error) {
	if cfg.AuthMode == config.AuthHeader {
		log.Warn("rider identity taken from the X-Rider-ID header; do not use in production")
		return identity.Header(), nil
	}
	v, err := identity.NewLINEValidator(cfg.LINEChannelID, cfg.LINEChannelSecret)
	if err != nil {
		return nil, fmt.Errorf("line token validator: %w", err)
	}
	return identity.LINE(v, log), nil
}

// staffMiddleware authenticates back-office callers. Without a secret no
// request is ever marked as staff.
func staffMiddleware(cfg config.Config, log *slog.Logger) (func(http.Handler) http.Handler, error) {
	if cfg.StaffTokenSecret == "" {
		log.Warn("STAFF_TOKEN_SECRET not set; staff endpoints are disabled")
		return func(next http.Handler) http.Handler { return next }, nil
	}
	v, err := identity.NewStaffValidator(cfg.StaffTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("staff token validator: %w", err)
	}
	return identity.Staff(v, log), nil
}
