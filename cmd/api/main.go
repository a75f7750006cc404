// Package main is the entry point for the booking API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/pflag"

	"github.com/pkordes/booking-api/internal/auth"
	"github.com/pkordes/booking-api/internal/config"
	"github.com/pkordes/booking-api/internal/handler"
	"github.com/pkordes/booking-api/internal/middleware"
	"github.com/pkordes/booking-api/internal/repo"
	"github.com/pkordes/booking-api/internal/service"
	"github.com/pkordes/booking-api/internal/validator"
	"github.com/pkordes/booking-api/migrations"
)

func main() {
	envFile := pflag.String("env-file", ".env", "optional dotenv file loaded before reading the environment")
	pflag.Parse()

	// --- Config -----------------------------------------------------------
	cfg, err := config.LoadWithFile(*envFile)
	if err != nil {
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

	// --- Storage ----------------------------------------------------------
	bookings, closeStore, err := openBookingRepo(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open booking store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	svc := service.NewBookingService(bookings)
	if cfg.SeedBookings {
		seeded, err := svc.Seed(context.Background(), service.SeedCount, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
		if err != nil {
			slog.Error("failed to seed bookings", "error", err)
			os.Exit(1)
		}
		slog.Info("seeded bookings", "count", len(seeded))
	}

	// --- Auth -------------------------------------------------------------
	gate, err := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, auth.NewMemoryTokenStore())
	if err != nil {
		slog.Error("failed to build admin gate", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer → CORS.
	// The body limit is applied per route by handler.NewRouter, after the admin gate.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))

	server := handler.NewServer(svc, validator.NewBookingValidator(), gate, logger)
	r.Mount("/", handler.NewRouter(server, cfg.MaxBodyBytes))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openBookingRepo returns a Postgres-backed repo when databaseURL is set,
// migrating the schema first, and an in-memory repo otherwise. The returned
// func releases the store.
func openBookingRepo(ctx context.Context, databaseURL string) (repo.BookingRepo, func(), error) {
	if databaseURL == "" {
		slog.Warn("DATABASE_URL not set; bookings are kept in memory")
		return repo.NewMemoryBookingRepo(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("database connection established")

	// goose runs on database/sql; share the pool rather than dialing again.
	db := stdlib.OpenDBFromPool(pool)
	closeAll := func() {
		_ = db.Close()
		pool.Close()
	}
	applied, err := migrations.Up(ctx, db)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	slog.Info("migrations applied", "count", applied)

	return repo.NewBookingRepo(pool), closeAll, nil
}
