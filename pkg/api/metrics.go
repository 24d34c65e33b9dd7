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

// Metrics holds all Prometheus metrics for the inspector
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	decodesTotal   *prometheus.CounterVec
	decodeDuration prometheus.Histogram
	saveSizeBytes  prometheus.Gauge
	checksumValid  prometheus.Gauge
	healthChecks   prometheus.Counter
}

// NewMetrics creates the metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swhedit_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "swhedit_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "swhedit_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		decodesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swhedit_decodes_total",
				Help: "Total number of savegame decodes",
			},
			[]string{"status"},
		),

		decodeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "swhedit_decode_duration_seconds",
				Help:    "Savegame decode and roundtrip check duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		saveSizeBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "swhedit_savegame_size_bytes",
				Help: "Size of the last savegame read",
			},
		),

		checksumValid: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "swhedit_savegame_checksum_valid",
				Help: "1 if the last savegame read carried a correct checksum",
			},
		),

		healthChecks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "swhedit_health_checks_total",
				Help: "Total number of health checks",
			},
		),
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDecode records one decode of the watched savegame
func (m *Metrics) RecordDecode(success bool, size int, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.decodesTotal.WithLabelValues(status).Inc()
	m.decodeDuration.Observe(duration.Seconds())
	m.saveSizeBytes.Set(float64(size))
}

// RecordChecksum records whether the stored checksum was correct
func (m *Metrics) RecordChecksum(valid bool) {
	if valid {
		m.checksumValid.Set(1)
	} else {
		m.checksumValid.Set(0)
	}
}

// RecordHealthCheck records a health check
func (m *Metrics) RecordHealthCheck() {
	m.healthChecks.Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics.
// A nil Metrics returns handler unchanged.
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	if m == nil {
		return handler
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		// Capture the status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		handler(rw, r)

		m.RecordHTTPRequest(method, endpoint, rw.statusCode, time.Since(start))
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
