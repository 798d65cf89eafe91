package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeStatus    = "status_error"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
)

// Metrics holds all Prometheus metrics. Each instance owns its registry so
// several servers (and tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Upstream metrics
	UpstreamCalls    *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	UpstreamStatus   *prometheus.CounterVec

	// Blueprint request metrics
	BlueprintRejections *prometheus.CounterVec
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	startTime := time.Now()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blueprint_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"method", "path"},
		),
		RequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blueprint_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blueprint_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		UpstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_upstream_calls_total",
				Help: "Total number of calls to the generative-language API by outcome",
			},
			[]string{"upstream", "outcome"},
		),
		UpstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blueprint_upstream_duration_seconds",
				Help:    "Upstream call duration in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 40, 60},
			},
			[]string{"upstream"},
		),
		UpstreamStatus: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_upstream_responses_total",
				Help: "Upstream HTTP responses by status code",
			},
			[]string{"upstream", "code"},
		),

		BlueprintRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_requests_rejected_total",
				Help: "Blueprint requests rejected before the upstream call",
			},
			[]string{"reason"},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "blueprint_uptime_seconds",
			Help: "Backend uptime in seconds",
		},
		func() float64 { return time.Since(startTime).Seconds() },
	)

	return m
}

// Registry exposes the underlying registry (for tests and custom exporters)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
}

// RecordUpstreamCall records one upstream call and its outcome
func (m *Metrics) RecordUpstreamCall(upstream, outcome string, duration time.Duration) {
	m.UpstreamCalls.WithLabelValues(upstream, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(upstream).Observe(duration.Seconds())
}

// RecordUpstreamStatus records the HTTP status an upstream answered with
func (m *Metrics) RecordUpstreamStatus(upstream, code string) {
	m.UpstreamStatus.WithLabelValues(upstream, code).Inc()
}

// RecordRejection records a blueprint request rejected by validation
func (m *Metrics) RecordRejection(reason string) {
	m.BlueprintRejections.WithLabelValues(reason).Inc()
}
