package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordProfileCacheHit()
	c.RecordProfileCacheHit()
	c.RecordProfileCacheMiss()
	c.RecordProfileFallback("not_found")
	c.RecordProfileFallback("store_error")
	c.RecordProfileFallback("not_found")
	c.RecordSubscriptionOpened()
	c.RecordSubscriptionDropped()
	c.RecordNotificationDelivered("insert")
	c.RecordNotificationDelivered("update")
	c.RecordNotificationDelivered("insert")
	c.RecordMarkReadFailure()

	assert.InDelta(t, 2, testutil.ToFloat64(c.profileCacheHits), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.profileCacheMisses), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(c.profileFallbacks.WithLabelValues("not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.profileFallbacks.WithLabelValues("store_error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.subscriptionsOpened), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.subscriptionsDrops), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(c.delivered.WithLabelValues("insert")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.delivered.WithLabelValues("update")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.markReadFailures), 0)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)
	c.RecordSubscriptionOpened()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "dashboard_notification_subscriptions_opened_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
