// Package main is the entry point for the Yatra planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/asharma/yatra-planner/backend/internal/config"
	"github.com/asharma/yatra-planner/backend/internal/handler"
	"github.com/asharma/yatra-planner/backend/internal/kv"
	"github.com/asharma/yatra-planner/backend/internal/middleware"
	"github.com/asharma/yatra-planner/backend/internal/recon"
	"github.com/asharma/yatra-planner/backend/internal/remote"
	"github.com/asharma/yatra-planner/backend/internal/service"
	"github.com/asharma/yatra-planner/backend/internal/store"
	"github.com/asharma/yatra-planner/backend/migrations"
)

const maxBodyBytes = 1 << 20 // 1 MiB

func main() {
	// --- Config -----------------------------------------------------------
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Durable KV store -------------------------------------------------
	kvStore, cleanup, err := openKV(cfg, logger)
	if err != nil {
		slog.Error("failed to open key-value store", "backend", cfg.KVBackend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// --- Stores and services ----------------------------------------------
	mutlog := store.NewMutationLog(kvStore, logger)
	trips := store.NewTripStore(kvStore, mutlog, logger)
	reviews := store.NewReviewStore(kvStore, mutlog, logger)

	// No remote backend is configured in this deployment, so every remote
	// call fails fast and the arbitrator serves the offline path. Swapping
	// in a real EntityService / GenerativeService is a wiring change here.
	var entity remote.EntityService = remote.Unavailable{}
	var genai remote.GenerativeService = remote.Unavailable{}

	planner := service.NewPlanner(trips, reviews, entity, genai, logger, cfg.GenerateTimeout)

	reconciler := recon.NewReconciler(mutlog, remote.WithRetry(entity, 3, 500*time.Millisecond), logger)
	scheduler, err := recon.StartScheduler(reconciler, cfg.ReconcileSchedule, logger)
	if err != nil {
		slog.Error("failed to start reconciliation scheduler", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	srv := handler.NewServer(planner, reconciler)
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "kv_backend", cfg.KVBackend)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openKV builds the configured key-value backend. The returned cleanup
// closes whatever connections the backend holds.
func openKV(cfg config.Config, logger *slog.Logger) (kv.Store, func(), error) {
	switch cfg.KVBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, err
		}
		logger.Info("redis connection established", "addr", cfg.RedisAddr)
		return kv.NewRedis(client), func() { _ = client.Close() }, nil

	case "postgres":
		// pgxpool manages a pool of Postgres connections.
		// New() does not open connections immediately — the first query does.
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, nil, err
		}
		if err := migrate(cfg.DatabaseURL); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("database connection established")
		return kv.NewPostgres(pool), pool.Close, nil

	default:
		logger.Info("using in-memory key-value store")
		return kv.NewMemory(), func() {}, nil
	}
}

// migrate applies the embedded goose migrations through a short-lived
// database/sql connection (goose requires one; pgxpool does not satisfy it).
func migrate(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
