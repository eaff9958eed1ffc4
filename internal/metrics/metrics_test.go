package metrics

import (
	"errors"
	"testing"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveOperation("donor", "create", nil)
	m.ObserveOperation("donor", "create", apperr.Duplicate("Email already registered", nil))
	m.ObserveOperation("donor", "create", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntityOperations.WithLabelValues("donor", "create", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntityOperations.WithLabelValues("donor", "create", "duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntityOperations.WithLabelValues("donor", "create", "store_failure")))
}

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/api/camps", "200", 0.01)
	m.ObserveRequest("GET", "/api/camps", "200", 0.02)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/camps", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", "200", 0)
		m.ObserveOperation("camp", "get", nil)
	})
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
