package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Monitor holds Prometheus counters for the scheduling API.
type Monitor struct {
	registry           *prometheus.Registry
	runsTotal          *prometheus.CounterVec
	comparisonsTotal   prometheus.Counter
	requestErrorsTotal prometheus.Counter
}

// New creates and registers the simulator's Prometheus metrics.
func New() *Monitor {
	registry := prometheus.NewRegistry()

	runsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sched_runs_total",
		Help: "Total number of algorithm runs, labeled by algorithm",
	}, []string{"algorithm"})
	comparisonsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sched_comparisons_total",
		Help: "Total number of all-algorithm comparisons",
	})
	requestErrorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sched_request_errors_total",
		Help: "Total number of requests rejected for invalid input",
	})

	registry.MustRegister(runsTotal, comparisonsTotal, requestErrorsTotal)

	return &Monitor{
		registry:           registry,
		runsTotal:          runsTotal,
		comparisonsTotal:   comparisonsTotal,
		requestErrorsTotal: requestErrorsTotal,
	}
}

// ObserveRun counts one completed run of the named algorithm.
func (m *Monitor) ObserveRun(algorithm string) {
	m.runsTotal.WithLabelValues(algorithm).Inc()
}

// ObserveComparison counts one completed comparison.
func (m *Monitor) ObserveComparison() {
	m.comparisonsTotal.Inc()
}

// ObserveRequestError counts one rejected request.
func (m *Monitor) ObserveRequestError() {
	m.requestErrorsTotal.Inc()
}

// Handler returns an http.Handler that serves the Prometheus scrape endpoint.
func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
