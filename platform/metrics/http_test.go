package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(HTTPMiddleware("test"))
	r.Get("/api/v1/orders/{order-id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("test", http.MethodGet, "/api/v1/orders/{order-id}", "404"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/42", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("test", http.MethodGet, "/api/v1/orders/{order-id}", "404"))
	assert.Equal(t, before+1, after)
}

func TestHandler_ExposesRegisteredCollectors(t *testing.T) {
	httpRequestsTotal.WithLabelValues("test", http.MethodGet, "/health", "200").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "http_requests_total"))
}
