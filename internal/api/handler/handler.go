package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/scaling-engine-api/internal/scheduler"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/assessing"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/importing"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/reconciling"
	"github.com/vfg2006/scaling-engine-api/pkg/apiErrors"
	"github.com/vfg2006/scaling-engine-api/pkg/utils"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeServiceError traduz os erros dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		assessmentErr     *assessing.AssessmentError
		reconciliationErr *reconciling.ReconciliationError
		importErr         *importing.ImportError
	)

	switch {
	case errors.As(err, &assessmentErr):
		apiErrors.WriteError(w, assessmentErr.Code, assessmentErr.Err.Error(), assessmentErr.Details)
	case errors.As(err, &reconciliationErr):
		apiErrors.WriteError(w, reconciliationErr.Code, reconciliationErr.Err.Error(), reconciliationErr.Details)
	case errors.As(err, &importErr):
		apiErrors.WriteError(w, importErr.Code, importErr.Err.Error(), importErr.Details)
	case errors.Is(err, scheduler.ErrSyncAlreadyRunning):
		apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}

// dateRange lê os parâmetros from e to (YYYY-MM-DD)
func dateRange(r *http.Request) (from, to *time.Time, err error) {
	from, err = utils.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		return nil, nil, err
	}

	to, err = utils.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		return nil, nil, err
	}

	return from, to, nil
}

// intParam devolve fallback quando o parâmetro não foi enviado
func intParam(r *http.Request, name string, fallback int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
