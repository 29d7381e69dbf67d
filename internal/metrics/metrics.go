// Package metrics holds the Prometheus collectors the API exports.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/holymole/core/internal/models"
)

const namespace = "holymole"

type Metrics struct {
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	blastLookups       *prometheus.CounterVec
	revenueAtRisk      prometheus.Histogram
	inventoryMutations *prometheus.CounterVec
}

// New registers every collector with reg. Tests pass a fresh registry so
// they do not collide with each other.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route pattern and status code.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route pattern.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		blastLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "blast_radius_lookups_total",
				Help:      "Blast radius lookups, split by whether the name resolved.",
			},
			[]string{"resolved"},
		),
		revenueAtRisk: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "blast_radius_revenue_at_risk",
				Help:      "Hourly revenue at risk reported by resolved lookups.",
				Buckets:   []float64{0, 50, 100, 250, 500, 1000, 2500, 5000},
			},
		),
		inventoryMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inventory_mutations_total",
				Help:      "Inventory writes by kind (seed, rush, restock).",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveBlastRadius(result models.BlastRadius) {
	if !result.Resolved() {
		m.blastLookups.WithLabelValues("false").Inc()
		return
	}
	m.blastLookups.WithLabelValues("true").Inc()
	m.revenueAtRisk.Observe(result.TotalRevenueRiskPerHour)
}

func (m *Metrics) InventoryMutation(kind string) {
	m.inventoryMutations.WithLabelValues(kind).Inc()
}
