package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecomfire/storefront-api/internal/api"
	"github.com/ecomfire/storefront-api/internal/infrastructure/config"
	storemongo "github.com/ecomfire/storefront-api/internal/infrastructure/db/mongo"
	storeredis "github.com/ecomfire/storefront-api/internal/infrastructure/db/redis"
	"github.com/ecomfire/storefront-api/pkg/logger"
)

// @title        Storefront API
// @version      1.0
// @description  Storefront backend: product browsing, session carts, buyer/seller accounts, and the seller product-management dashboard.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := storemongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := storeredis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	if err := storemongo.Bootstrap(ctx, db); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting storefront api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
