package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/holymole/core/cmd/api/middleware"
	"github.com/holymole/core/internal/handlers"
	"github.com/holymole/core/internal/metrics"
)

func newRouter(h *handlers.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *slog.Logger, corsOrigin string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics(m))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Cors(corsOrigin))

	h.Mount(r)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
