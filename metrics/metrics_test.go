package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(bookingsCreated.WithLabelValues("wizard"))
	IncBookingCreated("wizard")
	assert.Equal(t, before+1, testutil.ToFloat64(bookingsCreated.WithLabelValues("wizard")))

	IncHTTP(http.MethodGet, "/ping", http.StatusOK)
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/ping", "200")), 1.0)
}

func TestHandlerExposesNamespace(t *testing.T) {
	Register()
	IncSessionFailover()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hikebook_session_store_failovers_total")
}
