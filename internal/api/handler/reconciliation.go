package handler

import (
	"net/http"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/reconciling"
	"github.com/vfg2006/scaling-engine-api/pkg/apiErrors"
	"github.com/vfg2006/scaling-engine-api/pkg/log"
)

// RunReconciliation concilia na hora os pedidos e envios importados
func RunReconciliation(service reconciling.ReconciliationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.Run(r.Context())
		if err != nil {
			logger.WithError(err).Error("reconciliation: run failed")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"total_orders": summary.TotalOrders,
			"matched":      summary.Matched,
		}).Info("reconciliation: run finished")

		writeJSON(w, http.StatusOK, summary)
	})
}

func GetDashboard(service reconciling.ReconciliationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		from, to, err := dateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", err.Error())
			return
		}

		snapshot, err := service.GetDashboard(r.Context(), from, to)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reconciliation: dashboard failed")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func GetSKUSales(service reconciling.ReconciliationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		from, to, err := dateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", err.Error())
			return
		}

		report, err := service.GetSKUSales(r.Context(), from, to)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reconciliation: sku sales failed")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

// SearchOrders busca a jornada dos pedidos por order_id, telefone ou email
func SearchOrders(service reconciling.ReconciliationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		from, to, err := dateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", err.Error())
			return
		}

		limit, err := intParam(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser inteiro", nil)
			return
		}
		offset, err := intParam(r, "offset", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "offset deve ser inteiro", nil)
			return
		}

		page, err := service.SearchOrders(r.Context(), domain.JourneyFilters{
			Search:         query.Get("search"),
			PaymentMode:    query.Get("payment_mode"),
			DeliveryStatus: query.Get("delivery_status"),
			StartDate:      from,
			EndDate:        to,
			Limit:          limit,
			Offset:         offset,
		})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reconciliation: order search failed")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}
