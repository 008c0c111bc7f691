// Package main is the entry point for the shipment tracker API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/shiptrack/internal/auth"
	"github.com/pkordes/shiptrack/internal/config"
	"github.com/pkordes/shiptrack/internal/database"
	"github.com/pkordes/shiptrack/internal/events"
	"github.com/pkordes/shiptrack/internal/handler"
	"github.com/pkordes/shiptrack/internal/limiter"
	"github.com/pkordes/shiptrack/internal/middleware"
	"github.com/pkordes/shiptrack/internal/repo"
	"github.com/pkordes/shiptrack/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Database ---------------------------------------------------------
	// Connect retries with backoff so the API can start alongside Postgres.
	pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DBConnectAttempts, logger)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		sqlDB := stdlib.OpenDBFromPool(pool)
		migrator, err := database.NewMigrator(sqlDB)
		if err != nil {
			slog.Error("failed to build migrator", "error", err)
			os.Exit(1)
		}
		results, err := migrator.Up(ctx)
		if err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied", "count", len(results))
		_ = sqlDB.Close()
	}

	// --- Login limiter ----------------------------------------------------
	var lim limiter.Limiter = limiter.Nop{}
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			// The limiter fails open, so an unreachable Redis only costs throttling.
			slog.Warn("redis unreachable; login limiter will fail open", "error", err)
		}
		lim = limiter.NewRedis(rdb, cfg.LoginWindow, cfg.LoginMaxFailures, cfg.LoginBlockFor)
		slog.Info("login limiter enabled", "max_failures", cfg.LoginMaxFailures, "window", cfg.LoginWindow.String())
	}

	// --- Events -----------------------------------------------------------
	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		slog.Info("shipment events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Warn("event publisher close failed", "error", err)
		}
	}()

	// --- Services ---------------------------------------------------------
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.JWTTTL)
	shipmentSvc := service.NewShipmentService(repo.NewShipmentRepo(pool), publisher, logger)
	authSvc := service.NewAuthService(repo.NewUserRepo(pool), tokens, lim, logger)

	// --- Router -----------------------------------------------------------
	// Routes registers the generated strict server (internal/handler/gen)
	// on r; bearer auth is applied per operation from the OpenAPI security
	// requirements.
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP, which the
	// login limiter keys on.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	handler.NewServer(handler.Deps{
		Shipments:       shipmentSvc,
		Auth:            authSvc,
		DB:              pool,
		Logger:          logger,
		DefaultPageSize: cfg.DefaultPageSize,
	}).Routes(r)

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
