package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/optiifreight/quoting-engine/internal/api"
	"github.com/optiifreight/quoting-engine/internal/infrastructure/config"
	mongodb "github.com/optiifreight/quoting-engine/internal/infrastructure/db/mongo"
	redisdb "github.com/optiifreight/quoting-engine/internal/infrastructure/db/redis"
	"github.com/optiifreight/quoting-engine/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	carrierRepo := mongodb.NewCarrierRepository(db)
	if err := carrierRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("carrier index creation failed")
	}
	if cfg.Env == "development" {
		if err := carrierRepo.SeedCarriers(ctx); err != nil {
			log.Warn().Err(err).Msg("carrier seed failed")
		}
	}
	if err := mongodb.NewAuditRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("audit index creation failed")
	}
	if err := mongodb.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("user index creation failed")
	}

	e, dispatcher := api.NewRouter(cfg, db, rdb, log)
	dispatcher.Start(ctx)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("quoting engine listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
