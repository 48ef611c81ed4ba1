package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	first := New("sportitup")
	second := New("sportitup")

	first.BookingsCreated.WithLabelValues("sportitup", "online").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.BookingsCreated.WithLabelValues("sportitup", "online")))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.BookingsCreated.WithLabelValues("sportitup", "online")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New("sportitup")
	m.HTTPRequestsTotal.WithLabelValues("sportitup", "GET", "/api/v1/admin/stats", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/v1/admin/stats",service="sportitup",status="200"} 1`)
}

func TestBookingCreated(t *testing.T) {
	m := New("sportitup")
	m.BookingCreated("admin")
	m.BookingCreated("admin")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("sportitup", "admin")))

	var disabled *Metrics
	assert.NotPanics(t, func() { disabled.BookingCreated("online") })
}
