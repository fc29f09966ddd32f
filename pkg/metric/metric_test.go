package metric

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.ObserveAssessment("LAUNCH", "KILL")
	m.ObserveAssessment("LAUNCH", "KILL")
	m.ObserveImport("shopify", 3, 2, 1)
	m.ObserveReconciliation(map[string]int{"actual": 5, "lost": 2})
	m.ObserveReconciliation(map[string]int{"actual": 7})
	m.ObserveJob("ad_status_sync", nil)
	m.ObserveJob("ad_status_sync", errors.New("falhou"))
	m.ObserveHTTP(http.MethodGet, "/v1/ads", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AssessmentsTotal.WithLabelValues("LAUNCH", "KILL")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ImportedRecords.WithLabelValues("shopify", "new")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportedRecords.WithLabelValues("shopify", "failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReconciliationRuns))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.ReconciledOrders.WithLabelValues("actual")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ReconciledOrders))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRuns.WithLabelValues("ad_status_sync", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/v1/ads", "200")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "scaling_engine_ad_assessments_total")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAssessment("LAUNCH", "KILL")
		m.ObserveEvaluationFailure()
		m.ObserveBatch(time.Now())
		m.ObserveImport("prozo", 1, 1, 1)
		m.ObserveReconciliation(map[string]int{"actual": 1})
		m.ObserveJob("x", nil)
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
