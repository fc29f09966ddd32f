package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/scaling-engine-api/pkg/metric"
)

// Metrics mede contagem e latência das requisições de uma rota. O path é o
// padrão da rota (/v1/ads/:name/report), nunca a URL concreta.
func Metrics(m *metric.Metrics, method, path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(rec, r)

			m.ObserveHTTP(method, path, rec.statusCode, time.Since(startTime))
		})
	}
}
