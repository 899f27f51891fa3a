// Package server wires the mesh API onto chi and runs the HTTP listener.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/geofront-jp/jismesh-grid/internal/health"
	"github.com/geofront-jp/jismesh-grid/internal/middleware"
	"github.com/geofront-jp/jismesh-grid/internal/router"
)

// Run serves the API on addr until ctx is done, then shuts down gracefully.
// reporters gate /readyz.
func Run(ctx context.Context, addr string, logger *slog.Logger, api *router.API, reporters ...health.ReadinessReporter) error {
	r := chi.NewRouter()
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS())

	r.Get("/healthz", health.Liveness())
	r.Get("/readyz", health.Readiness(reporters...))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/mesh/{code}", api.MeshInfo())
		r.Get("/mesh/{code}/neighbors", api.MeshNeighbors())
		r.Get("/mesh/{code}/geojson", api.MeshGeoJSON())
		r.Get("/encode", api.Encode())
		r.Get("/grid", api.Grid())
		r.Get("/tally/{code}", api.Tally())
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listen", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
