package handler

import (
	"net/http"

	"github.com/vfg2006/scaling-engine-api/internal/api/handler/router"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/assessing"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/importing"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/reconciling"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// Metrics expõe os coletores no formato do Prometheus
func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Ads(service assessing.AssessmentService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/v1/ads/:name/status",
			Method:  http.MethodGet,
			Handler: GetAdStatus(service),
		},
		{
			Path:    "/v1/ads/:name/report",
			Method:  http.MethodGet,
			Handler: GetAdReport(service),
		},
		{
			Path:    "/v1/ads/evaluate",
			Method:  http.MethodPost,
			Handler: EvaluateAds(service),
		},
	}
}

func Imports(service importing.ImportService, maxUploadMB int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/imports",
			Method:  http.MethodGet,
			Handler: ListImports(service),
		},
		{
			Path:    "/v1/imports/:source",
			Method:  http.MethodPost,
			Handler: ImportFile(service, maxUploadMB),
		},
	}
}

func Reconciliation(service reconciling.ReconciliationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reconciliation/run",
			Method:  http.MethodPost,
			Handler: RunReconciliation(service),
		},
		{
			Path:    "/v1/reconciliation/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/reconciliation/orders",
			Method:  http.MethodGet,
			Handler: SearchOrders(service),
		},
		{
			Path:    "/v1/reconciliation/skus",
			Method:  http.MethodGet,
			Handler: GetSKUSales(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
