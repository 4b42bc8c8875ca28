package observability_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campo-erp/campo-erp/internal/observability"
	_ "github.com/campo-erp/campo-erp/testing"
)

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	m := observability.NewMetrics()

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTeapot, rec.Code)

	metricsReq := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	m.Handler().ServeHTTP(metricsRec, metricsReq)

	body := metricsRec.Body.String()
	require.True(t, strings.Contains(body, "campo_http_requests_total"), "expected request counter in exposition:\n%s", body)
	require.True(t, strings.Contains(body, `code="418"`), "expected status label in exposition:\n%s", body)
}

func TestNilMetricsIsInert(t *testing.T) {
	var m *observability.Metrics

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	require.NotNil(t, m.Middleware(next))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
