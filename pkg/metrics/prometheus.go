// Package metrics provides Prometheus metrics for the mentorship matching
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace string
	registry  prometheus.Registerer

	// Directory population
	totalMentors  prometheus.Gauge
	totalMentees  prometheus.Gauge
	totalMatches  prometheus.Gauge
	activeMatches prometheus.Gauge

	// Business events
	mentorsRegistered    prometheus.Counter
	menteesRegistered    prometheus.Counter
	duplicateRegistrants prometheus.Counter
	matchesCreated       prometheus.Counter
	matchesCancelled     prometheus.Counter
	matchesCompleted     prometheus.Counter
	rematches            prometheus.Counter
	lifecycleRejections  prometheus.Counter
	rankingQueries       prometheus.Counter

	// HTTP performance
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithRegistry sets the Prometheus registerer used for all metrics.
func WithRegistry(r prometheus.Registerer) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// Global metrics manager instance on a custom registry, so the default Go
// runtime collectors do not pollute the exposition.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton metrics registry

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "mentormatch",
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.totalMentors = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "mentors_total",
		Help:      "Number of registered mentors.",
	})
	m.totalMentees = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "mentees_total",
		Help:      "Number of registered mentees.",
	})
	m.totalMatches = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "matches_total",
		Help:      "Number of matches ever created.",
	})
	m.activeMatches = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "matches_active",
		Help:      "Number of matches currently in the ACTIVE state.",
	})

	m.mentorsRegistered = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "mentor_registrations_total",
		Help:      "Mentor registrations accepted.",
	})
	m.menteesRegistered = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "mentee_registrations_total",
		Help:      "Mentee registrations accepted.",
	})
	m.duplicateRegistrants = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "duplicate_registrations_total",
		Help:      "Registrations rejected because the email was already registered.",
	})
	m.matchesCreated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "matches_created_total",
		Help:      "Matches created and activated.",
	})
	m.matchesCancelled = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "matches_cancelled_total",
		Help:      "Matches moved to CANCELLED.",
	})
	m.matchesCompleted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "matches_completed_total",
		Help:      "Matches moved to COMPLETED.",
	})
	m.rematches = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rematches_total",
		Help:      "Rematch operations performed.",
	})
	m.lifecycleRejections = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "lifecycle_rejections_total",
		Help:      "Lifecycle transitions rejected (double activation, terminal state).",
	})
	m.rankingQueries = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "ranking_queries_total",
		Help:      "Candidate ranking queries served.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"endpoint", "method"})
	m.httpErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_errors_total",
		Help:      "HTTP error responses by endpoint and error class.",
	}, []string{"endpoint", "class"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Allocated heap bytes.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Current goroutine count.",
	})

	return m
}

// GetRegistry returns the gatherer backing the global manager for HTTP
// exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers on the global manager.

func UpdateTotalMentors(n int)  { globalManager.totalMentors.Set(float64(n)) }
func UpdateTotalMentees(n int)  { globalManager.totalMentees.Set(float64(n)) }
func UpdateTotalMatches(n int)  { globalManager.totalMatches.Set(float64(n)) }
func UpdateActiveMatches(n int) { globalManager.activeMatches.Set(float64(n)) }

func RecordMentorRegistered()      { globalManager.mentorsRegistered.Inc() }
func RecordMenteeRegistered()      { globalManager.menteesRegistered.Inc() }
func RecordDuplicateRegistration() { globalManager.duplicateRegistrants.Inc() }
func RecordMatchCreated()          { globalManager.matchesCreated.Inc() }
func RecordMatchCancelled()        { globalManager.matchesCancelled.Inc() }
func RecordMatchCompleted()        { globalManager.matchesCompleted.Inc() }
func RecordRematch()               { globalManager.rematches.Inc() }
func RecordLifecycleRejection()    { globalManager.lifecycleRejections.Inc() }
func RecordRankingQuery()          { globalManager.rankingQueries.Inc() }

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records the latency of one served request.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}

// RecordHTTPError records one error response with its class
// (client_error, not_found, server_error).
func RecordHTTPError(endpoint, class string) {
	globalManager.httpErrors.WithLabelValues(endpoint, class).Inc()
}

func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }
func UpdateSystemGoroutineCount(n int)     { globalManager.systemGoroutineCount.Set(float64(n)) }
