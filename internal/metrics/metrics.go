package metrics

import (
	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeOK labels an entity operation that succeeded
const OutcomeOK = "ok"

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	EntityOperations *prometheus.CounterVec
}

// New creates the metrics and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blood_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blood_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		EntityOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blood_entity_operations_total",
			Help: "Entity operations by kind, operation and outcome",
		}, []string{"kind", "op", "outcome"}),
	}
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveOperation records the outcome of an entity operation. A nil err is
// counted as ok, anything else under its error kind.
func (m *Metrics) ObserveOperation(kind, op string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = apperr.KindOf(err).String()
	}
	m.EntityOperations.WithLabelValues(kind, op, outcome).Inc()
}
