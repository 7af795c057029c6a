// Package metric provides Prometheus metrics for CarFlow.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// promCounterVec adapts prometheus.CounterVec to the CounterVec interface.
type promCounterVec struct {
	vec *prometheus.CounterVec
}

func (v promCounterVec) WithLabelValues(lvs ...string) Counter {
	return v.vec.WithLabelValues(lvs...)
}

// NewPrometheusRegistry creates a Registry backed by real Prometheus
// collectors registered on their own prometheus.Registry. Handler()
// serves the matching /metrics endpoint.
func NewPrometheusRegistry() (*Registry, *prometheus.Registry) {
	promReg := prometheus.NewRegistry()

	sessionsInFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "carflow_sessions_in_flight",
		Help: "Number of feed sessions currently open.",
	})
	sessionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carflow_sessions_total",
		Help: "Total feed sessions resolved, by outcome kind.",
	}, []string{"outcome"})
	cyclesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carflow_cycles_total",
		Help: "Total aggregate cycles completed.",
	})
	cycleDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "carflow_cycle_duration_seconds",
		Help:    "Duration of aggregate cycles from fan-out to completion.",
		Buckets: prometheus.DefBuckets,
	})
	recordsMerged := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carflow_records_merged_total",
		Help: "Total sighting records merged from successful sessions.",
	})
	feedConnections := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carflow_feed_connections_total",
		Help: "Total connections accepted by the feed server.",
	})
	feedSightings := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "carflow_feed_sightings",
		Help: "Number of sightings currently held by the feed server.",
	})

	promReg.MustRegister(
		sessionsInFlight,
		sessionsTotal,
		cyclesTotal,
		cycleDuration,
		recordsMerged,
		feedConnections,
		feedSightings,
	)

	return &Registry{
		SessionsInFlight: sessionsInFlight,
		SessionsTotal:    promCounterVec{vec: sessionsTotal},
		CyclesTotal:      cyclesTotal,
		CycleDuration:    cycleDuration,
		RecordsMerged:    recordsMerged,
		FeedConnections:  feedConnections,
		FeedSightings:    feedSightings,
	}, promReg
}

// Handler returns an HTTP handler serving the given Prometheus registry
// at /metrics.
func Handler(promReg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})
}
