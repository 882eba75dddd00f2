// Package main is the entry point for the travel planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Srujan578/travel-planner-website/internal/config"
	"github.com/Srujan578/travel-planner-website/internal/exchangerate"
	"github.com/Srujan578/travel-planner-website/internal/handler"
	"github.com/Srujan578/travel-planner-website/internal/middleware"
	"github.com/Srujan578/travel-planner-website/internal/narrator"
	"github.com/Srujan578/travel-planner-website/internal/openweather"
	"github.com/Srujan578/travel-planner-website/internal/planner"
	"github.com/Srujan578/travel-planner-website/internal/repo"
	"github.com/Srujan578/travel-planner-website/internal/service"
	"github.com/Srujan578/travel-planner-website/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a local-development convenience; missing files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Planning engine --------------------------------------------------
	// External collaborators are optional: a nil provider switches the
	// engine to its built-in fallback (seasonal weather, reference rates,
	// template replies). The health endpoint reports which are live.
	var forecasts planner.ForecastProvider
	if cfg.OpenWeatherAPIKey != "" {
		forecasts = openweather.New(cfg.OpenWeatherAPIKey, logger)
	}

	var rates planner.RateProvider
	if cfg.CurrencyAPIKey != "" {
		rates = exchangerate.New(cfg.CurrencyAPIKey, logger)
	}

	policy := planner.DefaultWeatherPolicy()
	policy.HorizonDays = cfg.ForecastHorizonDays
	policy.MaxTripDays = cfg.ForecastMaxTripDays

	engine := planner.New(forecasts, rates, policy, logger)
	replies := narrator.New(cfg.OpenAIAPIKey, logger)

	// --- Repositories and services ---------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	conversationRepo := repo.NewConversationRepo(pool)

	chatService := service.NewChatService(engine, replies, tripRepo, conversationRepo)
	tripService := service.NewTripService(tripRepo)
	exportService := service.NewExportService(tripRepo)

	server := handler.NewServer(chatService, tripService, exportService, handler.Collaborators{
		Weather:  forecasts != nil,
		Currency: rates != nil,
		Narrator: cfg.OpenAIAPIKey != "",
	})

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer, then the
	// API-specific layers. RealIP must run before the rate limiter so
	// clients behind a proxy are bucketed by their real address.
	limiter := middleware.NewRateLimiter(5, 10)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(1 << 20)) // 1 MiB
	r.Use(limiter.Handler)

	r.Mount("/", server.Routes())

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
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
