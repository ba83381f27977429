package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autobid/config"
	"autobid/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordLifecycle(t *testing.T) {
	m := New(&config.Config{})
	req := entity.DeleteRequest{Scope: entity.ScopeSelected, Type: entity.DeleteSoft}

	m.RecordLifecycle("listings", req, nil)
	m.RecordLifecycle("listings", req, nil)
	m.RecordLifecycle("listings", req, errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.lifecycleOperations.WithLabelValues("listings", "selected", "soft", OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.lifecycleOperations.WithLabelValues("listings", "selected", "soft", OutcomeFailure)), 0)
}

func TestMetrics_FeedCounters(t *testing.T) {
	m := New(&config.Config{})

	m.FeedSubscribed(1)
	m.FeedSubscribed(1)
	m.FeedSubscribed(-1)
	m.FeedDropped()
	m.FeedPublished(entity.FeedBidPlaced)

	assert.InDelta(t, 1, testutil.ToFloat64(m.feedSubscribers), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.feedDropped), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.feedPublished.WithLabelValues("bid.placed")), 0)
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/health", http.StatusOK, time.Millisecond)
		m.RecordImportRow(nil)
		m.FeedDropped()
	})
}

func TestMetrics_HandlerExposesNamespace(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Namespace: "backoffice"}})
	m.ObserveHTTP("GET", "/api/v1/admin/users", http.StatusOK, 10*time.Millisecond)
	m.RecordImportRow(nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `backoffice_http_requests_total{method="GET",path="/api/v1/admin/users",status="200"} 1`)
	assert.Contains(t, body, `backoffice_location_import_rows_total{outcome="success"} 1`)
}
