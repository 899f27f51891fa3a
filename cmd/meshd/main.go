package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/geofront-jp/jismesh-grid/internal/cache"
	"github.com/geofront-jp/jismesh-grid/internal/cache/lrucache"
	"github.com/geofront-jp/jismesh-grid/internal/cache/redisstore"
	"github.com/geofront-jp/jismesh-grid/internal/cache/tiered"
	"github.com/geofront-jp/jismesh-grid/internal/config"
	"github.com/geofront-jp/jismesh-grid/internal/logger"
	"github.com/geofront-jp/jismesh-grid/internal/observability"
	"github.com/geofront-jp/jismesh-grid/internal/router"
	"github.com/geofront-jp/jismesh-grid/internal/server"
	"github.com/geofront-jp/jismesh-grid/internal/tally"
)

var Version = "dev"

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{Level: cfg.LogLevel, Component: "meshd"}, os.Stdout)
	log := logger.NewSlog(&zl)
	observability.ExposeBuildInfo(Version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting meshd", "addr", cfg.Addr, "version", Version)

	// Redis is optional: without it meshd serves from the in-process tier
	// only and the tally endpoint reports unavailable.
	var remote cache.Store
	var tallyReader router.TallyReader
	if cfg.RedisAddr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		rc, err := redisstore.New(pingCtx, cfg.RedisAddr,
			redisstore.WithReadTimeout(cfg.CacheOpTimeout),
			redisstore.WithWriteTimeout(cfg.CacheOpTimeout),
		)
		cancel()
		if err != nil {
			log.Warn("redis unavailable, continuing without remote tier", "addr", cfg.RedisAddr, "err", err)
		} else {
			defer func() { _ = rc.Close() }()
			remote = rc
			tallyReader = tally.NewCounter(rc, cfg.TallyLevels)
		}
	}

	store := tiered.New(lrucache.New(cfg.LRUSize, cfg.GridCacheTTL), remote)
	api := router.New(log, store, tallyReader, cfg.GridCacheTTL, cfg.GridMaxCells)

	if err := server.Run(ctx, cfg.Addr, log, api); err != nil {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
	log.Info("meshd stopped")
}
