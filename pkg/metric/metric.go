package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scaling_engine"

// Metrics reúne os coletores da aplicação num registry próprio.
// Todos os métodos aceitam receptor nil, que desliga a coleta.
type Metrics struct {
	registry *prometheus.Registry

	// Avaliação de anúncios
	AssessmentsTotal   *prometheus.CounterVec
	EvaluationFailures prometheus.Counter
	BatchDuration      prometheus.Histogram

	// Importação e conciliação
	ImportedRecords    *prometheus.CounterVec
	ReconciledOrders   *prometheus.GaugeVec
	ReconciliationRuns prometheus.Counter

	// Agendadores
	JobRuns *prometheus.CounterVec

	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		AssessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ad_assessments_total",
			Help:      "Avaliações de anúncios por fase e status",
		}, []string{"phase", "status"}),
		EvaluationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ad_evaluation_failures_total",
			Help:      "Anúncios cuja avaliação terminou em erro",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ad_batch_duration_seconds",
			Help:      "Duração da avaliação em lote",
			Buckets:   prometheus.DefBuckets,
		}),

		ImportedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imported_records_total",
			Help:      "Registros importados por origem e resultado",
		}, []string{"source", "outcome"}),
		ReconciledOrders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reconciled_orders",
			Help:      "Pedidos da última conciliação por categoria de receita",
		}, []string{"revenue_category"}),
		ReconciliationRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_runs_total",
			Help:      "Execuções da conciliação",
		}),

		JobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Execuções dos agendadores por job e resultado",
		}, []string{"job", "result"}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP por método, rota e status",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.AssessmentsTotal,
		m.EvaluationFailures,
		m.BatchDuration,
		m.ImportedRecords,
		m.ReconciledOrders,
		m.ReconciliationRuns,
		m.JobRuns,
		m.HTTPRequests,
		m.HTTPDuration,
	)

	return m
}

// Handler expõe o registry no formato de texto do Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

func (m *Metrics) ObserveAssessment(phase, status string) {
	if m == nil {
		return
	}
	m.AssessmentsTotal.WithLabelValues(phase, status).Inc()
}

func (m *Metrics) ObserveEvaluationFailure() {
	if m == nil {
		return
	}
	m.EvaluationFailures.Inc()
}

func (m *Metrics) ObserveBatch(started time.Time) {
	if m == nil {
		return
	}
	m.BatchDuration.Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveImport(source string, inserted, updated, failed int) {
	if m == nil {
		return
	}
	m.ImportedRecords.WithLabelValues(source, "new").Add(float64(inserted))
	m.ImportedRecords.WithLabelValues(source, "updated").Add(float64(updated))
	m.ImportedRecords.WithLabelValues(source, "failed").Add(float64(failed))
}

// ObserveReconciliation substitui os contadores da conciliação anterior
func (m *Metrics) ObserveReconciliation(byCategory map[string]int) {
	if m == nil {
		return
	}
	m.ReconciliationRuns.Inc()
	m.ReconciledOrders.Reset()
	for category, count := range byCategory {
		m.ReconciledOrders.WithLabelValues(category).Set(float64(count))
	}
}

func (m *Metrics) ObserveJob(job string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.JobRuns.WithLabelValues(job, result).Inc()
}

func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
