// Package metrics exposes Prometheus instrumentation for calls made to the
// inventory/payroll backend.
package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricUpstreamRequestsTotal   = "hris_mobile_upstream_requests_total"
	MetricUpstreamDurationSeconds = "hris_mobile_upstream_request_duration_seconds"
	MetricStatisticsFallbackTotal = "hris_mobile_statistics_fallback_total"
)

// Upstream records outbound request counts and latencies. A nil *Upstream is
// valid and records nothing.
type Upstream struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
}

// NewUpstream registers the upstream collectors on a dedicated registry.
func NewUpstream() *Upstream {
	registry := prometheus.NewRegistry()

	m := &Upstream{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricUpstreamRequestsTotal,
			Help: "Requests sent to the inventory/payroll backend.",
		}, []string{"method", "path", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricUpstreamDurationSeconds,
			Help:    "Latency of requests sent to the inventory/payroll backend.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricStatisticsFallbackTotal,
			Help: "Statistics computed client-side because the list response carried none.",
		}, []string{"resource"}),
	}

	registry.MustRegister(m.requests, m.durations, m.fallbacks)
	return m
}

var idSegment = regexp.MustCompile(`/[0-9]+(/|$)`)

// PathTemplate collapses numeric path segments so label cardinality stays
// bounded: /payroll/loans/12/approve -> /payroll/loans/:id/approve.
func PathTemplate(path string) string {
	for idSegment.MatchString(path) {
		path = idSegment.ReplaceAllString(path, "/:id$1")
	}
	return path
}

// ObserveRequest records one finished upstream call. status is 0 for
// transport failures.
func (m *Upstream) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	tmpl := PathTemplate(path)
	statusLabel := "error"
	if status > 0 {
		statusLabel = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(method, tmpl, statusLabel).Inc()
	m.durations.WithLabelValues(method, tmpl).Observe(elapsed.Seconds())
}

// ObserveFallback counts a client-side statistics computation.
func (m *Upstream) ObserveFallback(resource string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(resource).Inc()
}

// FallbackCounter returns the fallback counter of resource.
func (m *Upstream) FallbackCounter(resource string) prometheus.Counter {
	return m.fallbacks.WithLabelValues(resource)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Upstream) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Upstream) Registry() *prometheus.Registry {
	return m.registry
}
