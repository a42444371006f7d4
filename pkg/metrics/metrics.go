package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all client-side request metrics
type Metrics struct {
	RequestsTotal  *prometheus.CounterVec
	RequestErrors  *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec
	StaleResponses prometheus.Counter
	BusyRejections prometheus.Counter
}

// NewMetrics creates and registers all metrics on the default registry
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Total number of API requests issued",
		}, []string{"resource", "method"}),
		RequestErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_errors_total",
			Help:      "Total number of API requests that failed",
		}, []string{"resource", "method", "kind"}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"resource", "method"}),
		StaleResponses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stale_responses_total",
			Help:      "Responses discarded because a newer fetch superseded them",
		}),
		BusyRejections: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "busy_rejections_total",
			Help:      "Mutations rejected because the same operation was still in flight",
		}),
	}
}

// New creates unregistered metrics, for tests that would otherwise collide on
// the default registry.
func New(namespace string) *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of API requests issued",
		}, []string{"resource", "method"}),
		RequestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_errors_total",
			Help:      "Total number of API requests that failed",
		}, []string{"resource", "method", "kind"}),
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests",
		}, []string{"resource", "method"}),
		StaleResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_responses_total",
			Help:      "Responses discarded because a newer fetch superseded them",
		}),
		BusyRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "busy_rejections_total",
			Help:      "Mutations rejected because the same operation was still in flight",
		}),
	}
}
