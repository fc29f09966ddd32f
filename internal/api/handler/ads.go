package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/assessing"
	"github.com/vfg2006/scaling-engine-api/pkg/apiErrors"
	"github.com/vfg2006/scaling-engine-api/pkg/log"
	"github.com/vfg2006/scaling-engine-api/pkg/utils"
)

var (
	knownPhases = map[domain.Phase]struct{}{
		domain.PhaseLaunch:     {},
		domain.PhaseValidation: {},
		domain.PhaseLongevity:  {},
		domain.PhaseNone:       {},
		domain.PhaseError:      {},
	}
	knownStatuses = map[domain.ScalingStatus]struct{}{
		domain.StatusContinue:   {},
		domain.StatusMonitor:    {},
		domain.StatusLastChance: {},
		domain.StatusKill:       {},
		domain.StatusError:      {},
	}
)

// EvaluateRecord é um dia de histórico enviado para avaliação avulsa
type EvaluateRecord struct {
	AdName          string  `json:"ad_name" validate:"required"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	Spend           float64 `json:"spend" validate:"gte=0"`
	Purchases       int     `json:"purchases" validate:"gte=0"`
	ConversionValue float64 `json:"conversion_value" validate:"gte=0"`
	CTR             float64 `json:"ctr" validate:"gte=0"`
	HookRate        float64 `json:"hook_rate" validate:"gte=0"`
	CPM             float64 `json:"cpm" validate:"gte=0"`
}

type EvaluateRequest struct {
	Records []EvaluateRecord `json:"records" validate:"required,min=1,dive"`
}

type EvaluateResult struct {
	Assessment domain.ScalingAssessment `json:"assessment"`
	Error      string                   `json:"error,omitempty"`
}

// ListAds lista a última avaliação de cada anúncio, do status mais grave ao mais tranquilo
func ListAds(service assessing.AssessmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var filters domain.AssessmentFilters
		if value := r.URL.Query().Get("phase"); value != "" {
			phase := domain.Phase(strings.ToUpper(value))
			if _, ok := knownPhases[phase]; !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fase inválida", value)
				return
			}
			filters.Phase = &phase
		}
		if value := r.URL.Query().Get("status"); value != "" {
			status := domain.ScalingStatus(strings.ToUpper(value))
			if _, ok := knownStatuses[status]; !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status inválido", value)
				return
			}
			filters.Status = &status
		}

		assessments, err := service.ListAssessments(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("ads: failed to list assessments")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, assessments)
	})
}

// GetAdStatus reavalia o anúncio com o histórico gravado
func GetAdStatus(service assessing.AssessmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adName := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger := log.ForContext(r.Context()).WithField("ad_name", adName)

		assessment, err := service.EvaluateAd(r.Context(), adName)
		if err != nil {
			logger.WithError(err).Warn("ads: failed to evaluate ad")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"phase":  assessment.Phase,
			"status": assessment.Status,
		}).Info("ads: ad evaluated")

		writeJSON(w, http.StatusOK, assessment)
	})
}

func GetAdReport(service assessing.AssessmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adName := httprouter.ParamsFromContext(r.Context()).ByName("name")

		report, err := service.GetReport(r.Context(), adName)
		if err != nil {
			log.ForContext(r.Context()).WithField("ad_name", adName).WithError(err).Warn("ads: failed to build report")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

// EvaluateAds avalia históricos enviados no corpo, sem gravar nada
func EvaluateAds(service assessing.AssessmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req EvaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Registros inválidos", err.Error())
			return
		}

		records := make([]domain.AdDailyRecord, 0, len(req.Records))
		for _, rec := range req.Records {
			date, _ := time.Parse(utils.DateLayout, rec.Date)
			records = append(records, domain.AdDailyRecord{
				AdName:          rec.AdName,
				Date:            date,
				Spend:           rec.Spend,
				Purchases:       rec.Purchases,
				ConversionValue: rec.ConversionValue,
				CTR:             rec.CTR,
				HookRate:        rec.HookRate,
				CPM:             rec.CPM,
			})
		}

		results, err := service.EvaluateRecords(r.Context(), records)
		if err != nil {
			logger.WithError(err).Warn("ads: failed to evaluate records")
			writeServiceError(w, err)
			return
		}

		response := make(map[string]EvaluateResult, len(results))
		for name, result := range results {
			item := EvaluateResult{Assessment: result.Assessment}
			if result.Failed() {
				item.Error = result.Err.Error()
			}
			response[name] = item
		}

		logger.WithField("ads", len(response)).Info("ads: ad-hoc evaluation finished")
		writeJSON(w, http.StatusOK, response)
	})
}
