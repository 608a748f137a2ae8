// Command api is the entry point for the campus API server.
//
// Startup order: logger, configuration, MongoDB, Redis, indexes (and the
// development seed), then the HTTP server with graceful shutdown. No business
// logic lives here; all wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/campus-compass/campus-api/internal/api"
	"github.com/campus-compass/campus-api/internal/core/token"
	"github.com/campus-compass/campus-api/internal/infrastructure/config"
	mongodb "github.com/campus-compass/campus-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campus-compass/campus-api/internal/infrastructure/db/redis"
	"github.com/campus-compass/campus-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; this is the one unstructured exit.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(startupCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	must(log, err, "connect to mongodb")
	defer func() {
		if derr := client.Disconnect(context.Background()); derr != nil {
			log.Error().Err(derr).Msg("mongo disconnect failed")
		}
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(startupCtx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	must(log, err, "connect to redis")
	defer func() {
		if cerr := rdb.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("redis close failed")
		}
	}()

	// --- Indexes and development seed ---
	credentialRepo := mongodb.NewCredentialRepository(db)
	must(log, credentialRepo.EnsureIndexes(startupCtx), "ensure credential indexes")

	drawingRepo := mongodb.NewDrawingRepository(db)
	must(log, drawingRepo.EnsureIndexes(startupCtx), "ensure drawing indexes")

	if cfg.Env == "development" {
		buildingRepo := mongodb.NewBuildingRepository(db)
		must(log, buildingRepo.Seed(startupCtx), "seed demo buildings")
		log.Info().Msg("demo buildings seeded")
	}

	// --- HTTP server ---
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL())
	e := api.NewRouter(db, rdb, issuer, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("REST API listening")
		if serr := e.Start(":" + cfg.Port); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			log.Fatal().Err(serr).Msg("server stopped")
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func must(log zerolog.Logger, err error, what string) {
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed: " + what)
	}
}
