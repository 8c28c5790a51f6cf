package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/mcoot/minisudoku-go/internal/metrics"
)

func newRouter(logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(Logging(logger))
	r.Use(Metrics)
	r.Use(Recovery(logger, PlainPanicHandler))
	r.HandleFunc("/players/{username}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	return r
}

func TestLoggingIncludesRouteTemplate(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	rr := httptest.NewRecorder()
	newRouter(logger).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/players/alice", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Contains(t, buf.String(), `"route":"/players/{username}"`)
	assert.Contains(t, buf.String(), `"status":418`)
}

func TestMetricsCountsByRoute(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{username}", "418")
	before := promtest.ToFloat64(counter)

	router := newRouter(logger)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/players/alice", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/players/bob", nil))

	assert.Equal(t, before+2, promtest.ToFloat64(counter))
}

func TestRecoveryReturns500(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	panics := metrics.HTTPPanicsTotal.WithLabelValues("/boom")
	before := promtest.ToFloat64(panics)

	rr := httptest.NewRecorder()
	newRouter(logger).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), `"route":"/boom"`)
	assert.Equal(t, before+1, promtest.ToFloat64(panics))
}

func TestRecoveredPanicIsLoggedAndCounted(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	requests := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "500")
	before := promtest.ToFloat64(requests)

	newRouter(logger).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Contains(t, buf.String(), `"msg":"http request"`)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Equal(t, before+1, promtest.ToFloat64(requests))
}
