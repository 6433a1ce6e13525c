// Command server runs the fitness backend HTTP API.
//
// It loads configuration from the environment (optionally via a .env file),
// opens the database, wires the AI planning gateway, registers routes, and
// serves until interrupted, shutting down gracefully.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/fitai-one/go-fitness-backend/docs"
	"github.com/fitai-one/go-fitness-backend/internal/config"
	httpapi "github.com/fitai-one/go-fitness-backend/internal/http"
	"github.com/fitai-one/go-fitness-backend/internal/observability"
	"github.com/fitai-one/go-fitness-backend/internal/planner"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
	"github.com/fitai-one/go-fitness-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title           FitAI Fitness Backend API
// @version         1.0
// @description     Workout plan generation, logging, and dashboard API backed by an external AI planning service.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey SessionCookie
// @in   cookie
// @name fitai_session
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db, err := repo.Open(cfg.DBDriver, dbTarget(cfg))
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("database open failed")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Warn().Err(err).Msg("database tracing not enabled")
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("auto-migration failed")
	}

	provider := planner.NewClient(cfg.AI.BaseURL, cfg.AI.ConnectTimeout, cfg.AI.Timeout)

	r := gin.New()
	httpapi.RegisterRoutes(r, db, provider, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown failed")
	}
	log.Info().Msg("bye")
}

// dbTarget returns the driver-specific connection target.
func dbTarget(cfg config.Config) string {
	if cfg.DBDriver == "postgres" {
		return cfg.DBDSN
	}
	return cfg.DBPath
}
