package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/geofront-jp/jismesh-grid/internal/cache/redisstore"
	"github.com/geofront-jp/jismesh-grid/internal/config"
	"github.com/geofront-jp/jismesh-grid/internal/health"
	"github.com/geofront-jp/jismesh-grid/internal/logger"
	"github.com/geofront-jp/jismesh-grid/internal/observability"
	"github.com/geofront-jp/jismesh-grid/internal/tally"
	"github.com/geofront-jp/jismesh-grid/internal/tally/kafkaconsumer"
)

var Version = "dev"

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	addr := getenv("TALLY_ADDR", ":8091")

	zl := logger.Build(logger.Config{Level: cfg.LogLevel, Component: "tallyd"}, os.Stdout)
	log := logger.NewSlog(&zl)
	observability.ExposeBuildInfo(Version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting tallyd", "addr", addr, "version", Version,
		"levels", cfg.TallyLevels, "topic", cfg.Kafka.Topic)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	rc, err := redisstore.New(pingCtx, cfg.RedisAddr)
	cancel()
	if err != nil {
		log.Error("redis connect failed", "addr", cfg.RedisAddr, "err", err)
		os.Exit(1)
	}
	defer func() { _ = rc.Close() }()

	counter := tally.NewCounter(rc, cfg.TallyLevels)
	consumer := kafkaconsumer.New(kafkaconsumer.Config{
		Brokers:             cfg.Kafka.Brokers,
		Topic:               cfg.Kafka.Topic,
		GroupID:             cfg.Kafka.GroupID,
		InitialOffsetOldest: true,
	}, log, counter)

	// Health and metrics only; the read path lives in meshd.
	r := chi.NewRouter()
	r.Get("/healthz", health.Liveness())
	r.Get("/readyz", health.Readiness(health.ReadyFunc(consumer.Ready)))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("http listen", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() { errCh <- consumer.Start(ctx) }()

	select {
	case <-ctx.Done():
		log.Info("signal received, shutting down")
	case err := <-errCh:
		if err != nil {
			log.Error("tallyd error", "err", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("tallyd stopped")
}
