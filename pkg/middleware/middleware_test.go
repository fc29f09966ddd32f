package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/scaling-engine-api/pkg/log"
	"github.com/vfg2006/scaling-engine-api/pkg/metric"
)

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		header   string
		validate func(t *testing.T, seen string, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Gera um ID de correlação quando o cliente não envia",
			validate: func(t *testing.T, seen string, rec *httptest.ResponseRecorder) {
				assert.NotEmpty(t, seen)
				assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
			},
		},
		{
			name:   "Reaproveita o ID de correlação recebido",
			header: "abc-123",
			validate: func(t *testing.T, seen string, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "abc-123", seen)
				assert.Equal(t, "abc-123", rec.Header().Get(CorrelationIDHeader))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = log.GetCorrelationID(r.Context())
				w.WriteHeader(http.StatusCreated)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
			if tt.header != "" {
				req.Header.Set(CorrelationIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			LoggingMiddleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusCreated, rec.Code)
			tt.validate(t, seen, rec)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ads", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestCors(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name        string
		allowed     []string
		origin      string
		method      string
		wantStatus  int
		wantAllowed string
	}{
		{"Origem liberada", []string{"http://localhost:3000"}, "http://localhost:3000", http.MethodGet, http.StatusNoContent, "http://localhost:3000"},
		{"Origem não liberada", []string{"http://localhost:3000"}, "http://evil.com", http.MethodGet, http.StatusNoContent, ""},
		{"Curinga libera qualquer origem", []string{"*"}, "http://painel.com", http.MethodGet, http.StatusNoContent, "http://painel.com"},
		{"Preflight responde sem chamar o handler", []string{"*"}, "http://painel.com", http.MethodOptions, http.StatusOK, "http://painel.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/ads", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestMetrics(t *testing.T) {
	m := metric.NewMetrics()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	handler := Metrics(m, http.MethodGet, "/v1/ads/:name/report")(next)
	for _, name := range []string{"a", "b"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ads/"+name+"/report", nil))
	}

	count := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/v1/ads/:name/report", "404"))
	require.Equal(t, 2.0, count)
}

func TestMetricsWithoutCollector(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Metrics(nil, http.MethodGet, "/healthcheck")(next)

	assert.NotPanics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	})
}
