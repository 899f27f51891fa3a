// Package router implements the HTTP handlers of the mesh API.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/geofront-jp/jismesh-grid/internal/cache"
	"github.com/geofront-jp/jismesh-grid/internal/cache/keys"
	"github.com/geofront-jp/jismesh-grid/internal/geojson"
	"github.com/geofront-jp/jismesh-grid/internal/grid"
	"github.com/geofront-jp/jismesh-grid/internal/observability"
	"github.com/geofront-jp/jismesh-grid/pkg/jpmesh"
)

// TallyReader reads accumulated observation counts per mesh code.
type TallyReader interface {
	Count(ctx context.Context, code string) (int64, error)
}

type API struct {
	logger       *slog.Logger
	store        cache.Store
	tally        TallyReader // nil when the tally backend is not configured
	gridTTL      time.Duration
	gridMaxCells int
}

func New(logger *slog.Logger, store cache.Store, tally TallyReader, gridTTL time.Duration, gridMaxCells int) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		logger:       logger,
		store:        store,
		tally:        tally,
		gridTTL:      gridTTL,
		gridMaxCells: gridMaxCells,
	}
}

type position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type meshResponse struct {
	Code      string   `json:"code"`
	Level     int      `json:"level"`
	North     float64  `json:"north"`
	South     float64  `json:"south"`
	East      float64  `json:"east"`
	West      float64  `json:"west"`
	Center    position `json:"center"`
	NorthEast position `json:"north_east"`
	SouthEast position `json:"south_east"`
	SouthWest position `json:"south_west"`
	NorthWest position `json:"north_west"`
}

func toMeshResponse(m jpmesh.Mesh) meshResponse {
	pos := func(c jpmesh.Coordinate) position {
		return position{Lat: c.Latitude(), Lon: c.Longitude()}
	}
	return meshResponse{
		Code:      m.Code(),
		Level:     m.Level(),
		North:     m.North(),
		South:     m.South(),
		East:      m.East(),
		West:      m.West(),
		Center:    pos(m.Center()),
		NorthEast: pos(m.NorthEast()),
		SouthEast: pos(m.SouthEast()),
		SouthWest: pos(m.SouthWest()),
		NorthWest: pos(m.NorthWest()),
	}
}

// MeshInfo serves GET /v1/mesh/{code}.
func (a *API) MeshInfo() http.HandlerFunc {
	return a.instrument("/v1/mesh/{code}", func(w http.ResponseWriter, r *http.Request) {
		m, ok := a.parseCode(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toMeshResponse(m))
	})
}

// MeshNeighbors serves GET /v1/mesh/{code}/neighbors. Directions beyond the
// covered territory are omitted from the response.
func (a *API) MeshNeighbors() http.HandlerFunc {
	type resp struct {
		Code      string `json:"code"`
		North     string `json:"north,omitempty"`
		NorthEast string `json:"north_east,omitempty"`
		East      string `json:"east,omitempty"`
		SouthEast string `json:"south_east,omitempty"`
		South     string `json:"south,omitempty"`
		SouthWest string `json:"south_west,omitempty"`
		West      string `json:"west,omitempty"`
		NorthWest string `json:"north_west,omitempty"`
	}
	return a.instrument("/v1/mesh/{code}/neighbors", func(w http.ResponseWriter, r *http.Request) {
		m, ok := a.parseCode(w, r)
		if !ok {
			return
		}
		ns := jpmesh.NeighborsOf(m)
		writeJSON(w, http.StatusOK, resp{
			Code:      m.Code(),
			North:     ns.North,
			NorthEast: ns.NorthEast,
			East:      ns.East,
			SouthEast: ns.SouthEast,
			South:     ns.South,
			SouthWest: ns.SouthWest,
			West:      ns.West,
			NorthWest: ns.NorthWest,
		})
	})
}

// MeshGeoJSON serves GET /v1/mesh/{code}/geojson.
func (a *API) MeshGeoJSON() http.HandlerFunc {
	return a.instrument("/v1/mesh/{code}/geojson", func(w http.ResponseWriter, r *http.Request) {
		m, ok := a.parseCode(w, r)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		writeJSON(w, http.StatusOK, geojson.FromMesh(m))
	})
}

// Encode serves GET /v1/encode?lat=&lon=&level=.
func (a *API) Encode() http.HandlerFunc {
	return a.instrument("/v1/encode", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		lat, err := strconv.ParseFloat(strings.TrimSpace(q.Get("lat")), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "lat must be a number")
			return
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(q.Get("lon")), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "lon must be a number")
			return
		}
		level, err := parseLevel(q.Get("level"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		coord, err := jpmesh.NewCoordinate(lat, lon)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		m, err := jpmesh.FromCoordinate(level, coord)
		observability.IncMeshOp("encode", level, err)
		if err != nil {
			var oor *jpmesh.OutOfRangeError
			if errors.As(err, &oor) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "encode failed")
			return
		}
		writeJSON(w, http.StatusOK, toMeshResponse(m))
	})
}

// Grid serves GET /v1/grid?bbox=w,s,e,n&level=. Rendered collections are
// cached; responses carry X-Cache hit/miss.
func (a *API) Grid() http.HandlerFunc {
	return a.instrument("/v1/grid", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		level, err := parseLevel(q.Get("level"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		bb, err := parseBBox(q.Get("bbox"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		key := keys.Grid(level, bb.West, bb.South, bb.East, bb.North)
		if a.store != nil {
			if cached, ok, err := a.store.Get(r.Context(), key); err == nil && ok {
				w.Header().Set("Content-Type", "application/geo+json")
				w.Header().Set("X-Cache", "hit")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(cached)
				return
			} else if err != nil {
				a.logger.Warn("grid cache read failed", "err", err)
			}
		}

		cells, err := grid.Scan(level, bb, a.gridMaxCells)
		observability.IncMeshOp("grid_scan", level, err)
		if err != nil {
			if errors.Is(err, grid.ErrTooManyCells) {
				writeError(w, http.StatusUnprocessableEntity,
					fmt.Sprintf("bbox expands to more than %d cells at level %d", a.gridMaxCells, level))
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		payload, err := json.Marshal(geojson.Collection(cells))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "encode collection")
			return
		}
		if a.store != nil {
			if err := a.store.Set(r.Context(), key, payload, a.gridTTL); err != nil {
				a.logger.Warn("grid cache write failed", "err", err)
			}
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.Header().Set("X-Cache", "miss")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	})
}

// Tally serves GET /v1/tally/{code}.
func (a *API) Tally() http.HandlerFunc {
	type resp struct {
		Code  string `json:"code"`
		Level int    `json:"level"`
		Count int64  `json:"count"`
	}
	return a.instrument("/v1/tally/{code}", func(w http.ResponseWriter, r *http.Request) {
		if a.tally == nil {
			writeError(w, http.StatusServiceUnavailable, "tally backend not configured")
			return
		}
		m, ok := a.parseCode(w, r)
		if !ok {
			return
		}
		n, err := a.tally.Count(r.Context(), m.Code())
		if err != nil {
			a.logger.Error("tally read failed", "code", m.Code(), "err", err)
			writeError(w, http.StatusBadGateway, "tally backend unavailable")
			return
		}
		writeJSON(w, http.StatusOK, resp{Code: m.Code(), Level: m.Level(), Count: n})
	})
}

func (a *API) parseCode(w http.ResponseWriter, r *http.Request) (jpmesh.Mesh, bool) {
	code := strings.TrimSpace(chi.URLParam(r, "code"))
	m, err := jpmesh.ParseCode(code)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	observability.IncMeshOp("decode", m.Level(), nil)
	return m, true
}

func parseLevel(raw string) (int, error) {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || level < 1 || level > 6 {
		return 0, errors.New("level must be an integer 1..6")
	}
	return level, nil
}

// parseBBox parses "west,south,east,north" in degrees.
func parseBBox(raw string) (grid.BBox, error) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != 4 {
		return grid.BBox{}, errors.New("bbox must be west,south,east,north")
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return grid.BBox{}, fmt.Errorf("bbox component %d: %w", i+1, err)
		}
		vals[i] = f
	}
	bb := grid.BBox{West: vals[0], South: vals[1], East: vals[2], North: vals[3]}
	if err := bb.Validate(); err != nil {
		return grid.BBox{}, err
	}
	return bb, nil
}

// instrument records request count and latency per route.
func (a *API) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		h(sw, r)
		observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
