package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linkstash/bookmarks-api/internal/api"
	"github.com/linkstash/bookmarks-api/internal/infrastructure/config"
	"github.com/linkstash/bookmarks-api/internal/infrastructure/db/gormdb"
	redisdb "github.com/linkstash/bookmarks-api/internal/infrastructure/db/redis"
	"github.com/linkstash/bookmarks-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Configuration errors (a missing JWT_SECRET in particular) abort
	// before the logger exists, so they go straight to stderr.
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := gormdb.Connect(ctx, gormdb.Config{DSN: cfg.DB.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := gormdb.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	// Redis only backs signin throttling and the readiness probe; the
	// service stays up without it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, signin throttling disabled")
		rdb = nil
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
