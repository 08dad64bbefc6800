// Package observability defines the Prometheus metrics exported by the
// gateway.
package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the gateway's collectors and the registry they live in.
// Each Metrics owns its registry so several instances (e.g. in tests) never
// collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	// HTTPRequestsTotal counts finished requests by effective method and
	// status code. Methods outside the standard set share the "other" label.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDurationSeconds observes request latency by effective
	// method, labeled like HTTPRequestsTotal.
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	// ErrorsTotal counts failures rendered by the error responder, by kind.
	ErrorsTotal *prometheus.CounterVec

	// ListenersUp reports which listeners are bound, by protocol.
	ListenersUp *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them, together with the
// Go runtime and process collectors, in a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_http_requests_total",
				Help: "Total number of HTTP requests handled by the ingress pipeline, labeled by effective method and status code.",
			},
			[]string{"method", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies in seconds, labeled by effective method.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_errors_total",
				Help: "Total number of failures rendered by the error responder, labeled by kind.",
			},
			[]string{"kind"},
		),
		ListenersUp: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gateway_listener_up",
				Help: "1 while a listener of the given protocol is bound.",
			},
			[]string{"protocol"},
		),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		m.ErrorsTotal,
		m.ListenersUp,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// otherMethod labels every method outside knownMethods.
const otherMethod = "other"

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(method string, status int, seconds float64) {
	method = methodLabel(method)
	m.HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDurationSeconds.WithLabelValues(method).Observe(seconds)
}

// methodLabel keeps the label set bounded whatever method token a client
// sends.
func methodLabel(method string) string {
	if _, ok := knownMethods[method]; ok {
		return method
	}
	return otherMethod
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
