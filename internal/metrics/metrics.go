// Package metrics exposes Prometheus instruments for generation, aggregation
// and the HTTP API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "analytic"

// Metrics holds every instrument on its own registry.
type Metrics struct {
	Registry *prometheus.Registry

	GenerationsTotal   *prometheus.CounterVec   // labels: result
	GenerationDuration prometheus.Histogram
	AggregationsTotal  *prometheus.CounterVec   // labels: window, result
	CacheLookupsTotal  *prometheus.CounterVec   // labels: result (hit, miss, stale)
	CachedSeries       prometheus.Gauge
	HTTPRequestsTotal  *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration       *prometheus.HistogramVec // labels: method, route
}

// New registers all instruments on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		GenerationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "synth",
			Name:      "generations_total",
			Help:      "Series generations by result.",
		}, []string{"result"}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "synth",
			Name:      "generation_duration_seconds",
			Help:      "Time to generate one series.",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .05},
		}),
		AggregationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calculator",
			Name:      "aggregations_total",
			Help:      "Window aggregations by window and result.",
		}, []string{"window", "result"}),
		CacheLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Series cache lookups by result.",
		}, []string{"result"}),
		CachedSeries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "series",
			Help:      "Products with a generated series after the last warm-up.",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.GenerationsTotal,
		m.GenerationDuration,
		m.AggregationsTotal,
		m.CacheLookupsTotal,
		m.CachedSeries,
		m.HTTPRequestsTotal,
		m.HTTPDuration,
	)
	return m
}

// ObserveGeneration counts one generation and its latency.
func (m *Metrics) ObserveGeneration(err error, took time.Duration) {
	if m == nil {
		return
	}
	m.GenerationsTotal.WithLabelValues(result(err)).Inc()
	m.GenerationDuration.Observe(took.Seconds())
}

// ObserveAggregation counts one aggregation.
func (m *Metrics) ObserveAggregation(window string, err error) {
	if m == nil {
		return
	}
	m.AggregationsTotal.WithLabelValues(window, result(err)).Inc()
}

// ObserveCache counts one cache lookup.
func (m *Metrics) ObserveCache(outcome string) {
	if m == nil {
		return
	}
	m.CacheLookupsTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
