package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API.
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Decode metrics
	tagsDecodedTotal    *prometheus.CounterVec
	decodeFailuresTotal *prometheus.CounterVec
	inspectionsTotal    *prometheus.CounterVec

	// API key authentication metrics
	authRequestsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics on the default
// registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the metrics on a specific registerer. Tests use
// this with a fresh registry to avoid duplicate registration.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dxfkit_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dxfkit_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dxfkit_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		tagsDecodedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dxfkit_tags_decoded_total",
				Help: "Total number of DXF records decoded",
			},
			[]string{"format"},
		),

		decodeFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dxfkit_decode_failures_total",
				Help: "Total number of decode failures",
			},
			[]string{"format", "reason"},
		),

		inspectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dxfkit_inspections_total",
				Help: "Total number of file inspections",
			},
			[]string{"format", "status"},
		),

		authRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dxfkit_auth_requests_total",
				Help: "Total number of authentication requests",
			},
			[]string{"status"},
		),
	}
}

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordInspection records a completed or failed file inspection.
func (m *Metrics) RecordInspection(format string, tags int, success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.inspectionsTotal.WithLabelValues(format, status).Inc()
	if tags > 0 {
		m.tagsDecodedTotal.WithLabelValues(format).Add(float64(tags))
	}
}

// RecordDecodeFailure records a decode failure by reason.
func (m *Metrics) RecordDecodeFailure(format, reason string) {
	m.decodeFailuresTotal.WithLabelValues(format, reason).Inc()
}

// RecordAuthRequest records an authentication request.
func (m *Metrics) RecordAuthRequest(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.authRequestsTotal.WithLabelValues(status).Inc()
}

// statusRecorder captures the response code for instrumentation.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// InstrumentHandler wraps a handler with request metrics.
func (m *Metrics) InstrumentHandler(method, endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.httpRequestsInFlight.WithLabelValues(method, endpoint).Inc()
		defer m.httpRequestsInFlight.WithLabelValues(method, endpoint).Dec()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		m.RecordHTTPRequest(method, endpoint, rec.status, time.Since(start))
	}
}

// InstrumentAuthMiddleware wraps an auth middleware with auth metrics.
func (m *Metrics) InstrumentAuthMiddleware(auth func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapped := auth(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			wrapped.ServeHTTP(rec, r)
			m.RecordAuthRequest(rec.status != http.StatusUnauthorized)
		})
	}
}
