// Package metrics owns the Prometheus collectors exported by the sensor API.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/SachinMhetre678/DevOpsESE-L3/load"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sensorapi"

// Metrics groups the collectors and the registry they are registered with.
// Each instance has its own registry, so tests and parallel servers never
// collide on the global default registry.
type Metrics struct {
	registry *prometheus.Registry

	up           prometheus.Gauge
	loadRuns     prometheus.Counter
	loadDuration prometheus.Histogram
	requests     *prometheus.CounterVec
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		up: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "up",
			Help:      "Indicates if the sensor API is serving (1=up).",
		}),
		loadRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_runs_total",
			Help:      "Number of completed gentle CPU load runs.",
		}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Wall-clock duration of gentle CPU load runs.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route, method and status.",
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.up,
		m.loadRuns,
		m.loadDuration,
		m.requests,
	)
	m.up.Set(1)
	return m
}

// ObserveLoad records one load run. Its signature matches load.WithOnComplete.
func (m *Metrics) ObserveLoad(r load.Result) {
	m.loadRuns.Inc()
	m.loadDuration.Observe(r.Elapsed.Seconds())
}

// ObserveRequest counts one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
