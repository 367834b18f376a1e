// Package metrics provides Prometheus instrumentation for the Bistro server.
//
// It pre-defines the standard HTTP metrics plus the checkout-pipeline
// counters, and exposes them on GET /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ─────────────────────────────────────────────
// Built-in HTTP metrics
// ─────────────────────────────────────────────

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bistro",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bistro",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "bistro",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// ─── Checkout pipeline ────────────────────────────────────────────

	// PaymentsRecorded counts reconciled checkouts by cart-clearance outcome.
	PaymentsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bistro",
			Subsystem: "payments",
			Name:      "recorded_total",
			Help:      "Total payments persisted, by cart clearance outcome.",
		},
		[]string{"clearance"}, // "complete" | "partial"
	)

	// RevenueRecorded accumulates the prices of persisted payments.
	RevenueRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bistro",
		Subsystem: "payments",
		Name:      "revenue_total",
		Help:      "Sum of prices across persisted payments.",
	})

	// IntentFailures counts payment-intent requests the gateway rejected.
	IntentFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bistro",
		Subsystem: "payments",
		Name:      "intent_failures_total",
		Help:      "Payment intent requests rejected by the gateway.",
	})

	// ─── Background jobs / cache ──────────────────────────────────────

	// QueueJobsProcessed counts processed queue jobs by status.
	QueueJobsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bistro",
			Subsystem: "queue",
			Name:      "jobs_processed_total",
			Help:      "Total queue jobs processed.",
		},
		[]string{"status"}, // "success" | "failed"
	)

	// CacheHits / CacheMisses track cache effectiveness.
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bistro",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total cache hits.",
		},
		[]string{"key"},
	)
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bistro",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total cache misses.",
		},
		[]string{"key"},
	)
)

// ─────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────

// DefaultRegistry is the Prometheus registry used by the server.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		PaymentsRecorded,
		RevenueRecorded,
		IntentFailures,
		QueueJobsProcessed,
		CacheHits,
		CacheMisses,
	)
}

// MustRegister adds custom collectors to the server registry.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// ─────────────────────────────────────────────
// HTTP middleware
// ─────────────────────────────────────────────

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records Prometheus metrics for every request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler returns the /metrics scrape endpoint handler.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}

// RecordQueueJob records a queue job result.
func RecordQueueJob(status string) {
	QueueJobsProcessed.WithLabelValues(status).Inc()
}

// RecordPayment records a persisted payment and its revenue. clearance is
// "complete" when the cart rows were removed, "partial" when they were not.
func RecordPayment(clearance string, price float64) {
	PaymentsRecorded.WithLabelValues(clearance).Inc()
	RevenueRecorded.Add(price)
}
