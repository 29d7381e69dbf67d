// Package handlers serves the HTTP endpoints of the Holy Mole API.
// Every response body is JSON, indented when the request asks for ?pretty=true.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/holymole/core/internal/blastradius"
	"github.com/holymole/core/internal/metrics"
	"github.com/holymole/core/internal/models"
)

type InventoryStore interface {
	List(ctx context.Context) ([]models.Ingredient, error)
	Seed(ctx context.Context) (int, error)
	SimulateRush(ctx context.Context, rng *rand.Rand) ([]models.StockUpdate, error)
	Restock(ctx context.Context, name string) (models.RestockResult, error)
}

type StatusResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Count   int                  `json:"count,omitempty"`
	Updated []models.StockUpdate `json:"updated,omitempty"`
}

// Handler serves every endpoint that needs the engine or the inventory.
type Handler struct {
	engine  *blastradius.Engine
	store   InventoryStore
	metrics *metrics.Metrics
	logger  *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func New(engine *blastradius.Engine, store InventoryStore, m *metrics.Metrics, logger *slog.Logger, rng *rand.Rand) *Handler {
	return &Handler{
		engine:  engine,
		store:   store,
		metrics: m,
		logger:  logger,
		rng:     rng,
	}
}

func encodeJSON(w http.ResponseWriter, r *http.Request, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encodeJSON(w, r, status, v); err != nil {
		h.logger.Error("encoding response", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	if err != nil {
		h.logger.Error(msg, "path", r.URL.Path, "error", err)
	}
	h.writeJSON(w, r, status, StatusResponse{Status: "error", Message: msg})
}

// nameParam returns the trailing wildcard segment, which may itself contain
// slashes. chi matches on RawPath only when the request has one, so only then
// is the segment still escaped.
func nameParam(r *http.Request) string {
	raw := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
