package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/importing"
	"github.com/vfg2006/scaling-engine-api/pkg/apiErrors"
	"github.com/vfg2006/scaling-engine-api/pkg/log"
)

const (
	uploadField     = "file"
	multipartMemory = 8 << 20
	defaultListSize = 20
)

// ImportFile recebe o arquivo (campo multipart "file") e grava os registros da origem
func ImportFile(service importing.ImportService, maxUploadMB int) http.Handler {
	maxBytes := int64(maxUploadMB) << 20

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		value := httprouter.ParamsFromContext(r.Context()).ByName("source")
		logger := log.ForContext(r.Context()).WithField("source", value)

		source, ok := importing.ParseSource(value)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedSource, "Origem de importação inválida. Valores aceitos: ads, orders, shipments", value)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo maior que o limite", maxUploadMB)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie o arquivo como multipart/form-data", err.Error())
			return
		}

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo file ausente", nil)
			return
		}
		defer file.Close()

		result, err := service.Import(r.Context(), source, header.Filename, file)
		if err != nil {
			logger.WithError(err).Warn("imports: failed to import file")
			writeServiceError(w, err)
			return
		}

		logger.WithField("batch_id", result.BatchID).Info("imports: file imported")
		writeJSON(w, http.StatusCreated, result)
	})
}

func ListImports(service importing.ImportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := intParam(r, "limit", defaultListSize)
		if err != nil || limit <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
			return
		}

		imports, err := service.ListImports(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("imports: failed to list imports")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, imports)
	})
}
