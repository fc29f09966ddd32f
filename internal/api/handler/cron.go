package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/scaling-engine-api/pkg/apiErrors"
)

// Tipos de cron job aceitos no disparo manual
const (
	CronJobTypeAdStatus       = "ad-status"
	CronJobTypeReconciliation = "reconciliation"
)

// CronJob é um agendador que aceita disparo manual
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores disponíveis para disparo manual
type CronJobServices struct {
	AdStatusSync       CronJob
	ReconciliationSync CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeAdStatus:
		return s.AdStatusSync, s.AdStatusSync != nil
	case CronJobTypeReconciliation:
		return s.ReconciliationSync, s.ReconciliationSync != nil
	default:
		return nil, false
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logrus.WithField("job", cronType).Info("INIT - RunCronJob")

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ad-status, reconciliation", cronType)
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for _, cronType := range []string{CronJobTypeAdStatus, CronJobTypeReconciliation} {
			if job, ok := services.byType(cronType); ok {
				status[cronType] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	})
}
