package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/scaling-engine-api/internal/api/handler/router"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/internal/scaling"
	"github.com/vfg2006/scaling-engine-api/internal/scheduler"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/assessing"
	assessingmocks "github.com/vfg2006/scaling-engine-api/internal/usecases/assessing/mocks"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/importing"
	importingmocks "github.com/vfg2006/scaling-engine-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/reconciling"
	reconcilingmocks "github.com/vfg2006/scaling-engine-api/internal/usecases/reconciling/mocks"
	"github.com/vfg2006/scaling-engine-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func serve(routes []router.Route, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestListAds(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(service *assessingmocks.MockAssessmentService)
		wantStatus int
		wantCode   string
	}{
		{
			name:  "Lista com filtros de fase e status",
			query: "?phase=launch&status=kill",
			setup: func(service *assessingmocks.MockAssessmentService) {
				service.EXPECT().ListAssessments(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, filters domain.AssessmentFilters) ([]domain.ScalingAssessment, error) {
						require.NotNil(t, filters.Phase)
						require.NotNil(t, filters.Status)
						assert.Equal(t, domain.PhaseLaunch, *filters.Phase)
						assert.Equal(t, domain.StatusKill, *filters.Status)
						return []domain.ScalingAssessment{{AdName: "AD_A", Status: domain.StatusKill}}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Fase desconhecida",
			query:      "?phase=growth",
			setup:      func(service *assessingmocks.MockAssessmentService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:  "Erro do banco vira SRV_002",
			query: "",
			setup: func(service *assessingmocks.MockAssessmentService) {
				service.EXPECT().ListAssessments(gomock.Any(), domain.AssessmentFilters{}).Return(nil,
					assessing.NewAssessmentError(assessing.ErrListAssessments, apiErrors.ErrDatabaseOperation, "", "Falha ao listar avaliações"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := assessingmocks.NewMockAssessmentService(gomock.NewController(t))
			tt.setup(service)

			rec := serve(Ads(service), httptest.NewRequest(http.MethodGet, "/v1/ads"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetAdStatus(t *testing.T) {
	t.Run("Devolve a avaliação do anúncio", func(t *testing.T) {
		service := assessingmocks.NewMockAssessmentService(gomock.NewController(t))
		service.EXPECT().EvaluateAd(gomock.Any(), "AD_A").Return(&domain.ScalingAssessment{
			AdName: "AD_A",
			Phase:  domain.PhaseValidation,
			Status: domain.StatusContinue,
		}, nil)

		rec := serve(Ads(service), httptest.NewRequest(http.MethodGet, "/v1/ads/AD_A/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.ScalingAssessment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.StatusContinue, got.Status)
	})

	t.Run("Anúncio sem histórico devolve 404", func(t *testing.T) {
		service := assessingmocks.NewMockAssessmentService(gomock.NewController(t))
		service.EXPECT().EvaluateAd(gomock.Any(), "AD_X").Return(nil,
			assessing.NewAssessmentError(assessing.ErrAdNotFound, apiErrors.ErrAdNotFound, "AD_X", "Nenhum registro encontrado para o anúncio"))

		rec := serve(Ads(service), httptest.NewRequest(http.MethodGet, "/v1/ads/AD_X/status", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrAdNotFound, decodeError(t, rec).Code)
	})
}

func TestGetAdReport(t *testing.T) {
	service := assessingmocks.NewMockAssessmentService(gomock.NewController(t))
	service.EXPECT().GetReport(gomock.Any(), "AD_A").Return(&domain.AdReport{AdName: "AD_A"}, nil)

	rec := serve(Ads(service), httptest.NewRequest(http.MethodGet, "/v1/ads/AD_A/report", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"AD_A"`)
}

func TestEvaluateAds(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(service *assessingmocks.MockAssessmentService)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Avalia os registros enviados",
			body: `{"records":[{"ad_name":"AD_A","date":"2024-03-01","spend":800},{"ad_name":"AD_B","date":"2024-03-01","spend":100}]}`,
			setup: func(service *assessingmocks.MockAssessmentService) {
				service.EXPECT().EvaluateRecords(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, records []domain.AdDailyRecord) (map[string]scaling.BatchResult, error) {
						require.Len(t, records, 2)
						assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
						return map[string]scaling.BatchResult{
							"AD_A": {Assessment: domain.ScalingAssessment{AdName: "AD_A", Status: domain.StatusMonitor}},
							"AD_B": {Assessment: domain.ScalingAssessment{AdName: "AD_B", Status: domain.StatusError}, Err: errors.New("histórico inválido")},
						}, nil
					})
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got map[string]EvaluateResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, domain.StatusMonitor, got["AD_A"].Assessment.Status)
				assert.Empty(t, got["AD_A"].Error)
				assert.Equal(t, "histórico inválido", got["AD_B"].Error)
			},
		},
		{
			name:       "JSON inválido",
			body:       `{"records":`,
			setup:      func(service *assessingmocks.MockAssessmentService) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
			},
		},
		{
			name:       "Sem registros",
			body:       `{"records":[]}`,
			setup:      func(service *assessingmocks.MockAssessmentService) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
			},
		},
		{
			name:       "Data fora do formato",
			body:       `{"records":[{"ad_name":"AD_A","date":"01/03/2024","spend":800}]}`,
			setup:      func(service *assessingmocks.MockAssessmentService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Gasto negativo",
			body:       `{"records":[{"ad_name":"AD_A","date":"2024-03-01","spend":-1}]}`,
			setup:      func(service *assessingmocks.MockAssessmentService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := assessingmocks.NewMockAssessmentService(gomock.NewController(t))
			tt.setup(service)

			rec := serve(Ads(service), httptest.NewRequest(http.MethodPost, "/v1/ads/evaluate", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func multipartUpload(t *testing.T, path, field, fileName, content string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImportFile(t *testing.T) {
	tests := []struct {
		name       string
		req        func(t *testing.T) *http.Request
		setup      func(service *importingmocks.MockImportService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Importa o export de pedidos",
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, "/v1/imports/orders", "file", "orders.csv", "Name,Total,Financial Status\n#1,10,paid\n")
			},
			setup: func(service *importingmocks.MockImportService) {
				service.EXPECT().Import(gomock.Any(), domain.ImportSourceShopify, "orders.csv", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ domain.ImportSource, _ string, file io.Reader) (*domain.ImportResult, error) {
						content, err := io.ReadAll(file)
						require.NoError(t, err)
						assert.Contains(t, string(content), "#1,10,paid")
						return &domain.ImportResult{BatchID: "abc123", Source: domain.ImportSourceShopify, RecordsTotal: 1}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Origem inválida",
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, "/v1/imports/sales", "file", "x.csv", "a\n")
			},
			setup:      func(service *importingmocks.MockImportService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrUnsupportedSource,
		},
		{
			name: "Campo file ausente",
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, "/v1/imports/ads", "arquivo", "x.csv", "a\n")
			},
			setup:      func(service *importingmocks.MockImportService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Corpo sem multipart",
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/v1/imports/ads", strings.NewReader("a,b"))
			},
			setup:      func(service *importingmocks.MockImportService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "Colunas ausentes viram 422",
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, "/v1/imports/shipments", "file", "mis.csv", "AWB\nX\n")
			},
			setup: func(service *importingmocks.MockImportService) {
				service.EXPECT().Import(gomock.Any(), domain.ImportSourceProzo, "mis.csv", gomock.Any()).Return(nil,
					importing.NewImportError(importing.ErrMissingColumns, apiErrors.ErrMissingColumns, domain.ImportSourceProzo, "Status"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrMissingColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := importingmocks.NewMockImportService(gomock.NewController(t))
			tt.setup(service)

			rec := serve(Imports(service, 1), tt.req(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestImportFileTooLarge(t *testing.T) {
	service := importingmocks.NewMockImportService(gomock.NewController(t))
	content := strings.Repeat("x", 2<<20)

	rec := serve(Imports(service, 1), multipartUpload(t, "/v1/imports/ads", "file", "big.csv", content))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, apiErrors.ErrFileTooLarge, decodeError(t, rec).Code)
}

func TestListImports(t *testing.T) {
	t.Run("Usa o limite padrão", func(t *testing.T) {
		service := importingmocks.NewMockImportService(gomock.NewController(t))
		service.EXPECT().ListImports(gomock.Any(), defaultListSize).Return([]domain.ImportResult{{BatchID: "a"}}, nil)

		rec := serve(Imports(service, 1), httptest.NewRequest(http.MethodGet, "/v1/imports", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Limite inválido", func(t *testing.T) {
		service := importingmocks.NewMockImportService(gomock.NewController(t))

		rec := serve(Imports(service, 1), httptest.NewRequest(http.MethodGet, "/v1/imports?limit=-3", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReconciliationHandlers(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		req        *http.Request
		setup      func(service *reconcilingmocks.MockReconciliationService)
		wantStatus int
	}{
		{
			name: "Executa a conciliação",
			req:  httptest.NewRequest(http.MethodPost, "/v1/reconciliation/run", nil),
			setup: func(service *reconcilingmocks.MockReconciliationService) {
				service.EXPECT().Run(gomock.Any()).Return(&domain.MatchSummary{TotalOrders: 2, Matched: 1, NotShipped: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Erro na conciliação",
			req:  httptest.NewRequest(http.MethodPost, "/v1/reconciliation/run", nil),
			setup: func(service *reconcilingmocks.MockReconciliationService) {
				service.EXPECT().Run(gomock.Any()).Return(nil,
					reconciling.NewReconciliationError(reconciling.ErrFetchOrders, apiErrors.ErrDatabaseOperation, "Falha ao buscar pedidos importados"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "Painel com período",
			req:  httptest.NewRequest(http.MethodGet, "/v1/reconciliation/dashboard?from=2024-05-01&to=2024-05-31", nil),
			setup: func(service *reconcilingmocks.MockReconciliationService) {
				service.EXPECT().GetDashboard(gomock.Any(), &from, &to).Return(&domain.MetricsSnapshot{TotalOrders: 3}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Painel com data inválida",
			req:        httptest.NewRequest(http.MethodGet, "/v1/reconciliation/dashboard?from=01-05-2024", nil),
			setup:      func(service *reconcilingmocks.MockReconciliationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Vendas por SKU sem período",
			req:  httptest.NewRequest(http.MethodGet, "/v1/reconciliation/skus", nil),
			setup: func(service *reconcilingmocks.MockReconciliationService) {
				service.EXPECT().GetSKUSales(gomock.Any(), (*time.Time)(nil), (*time.Time)(nil)).Return(&domain.SKUSalesReport{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Busca de pedidos repassa os filtros",
			req:  httptest.NewRequest(http.MethodGet, "/v1/reconciliation/orders?search=1001&payment_mode=cod&delivery_status=rto&limit=50&offset=10", nil),
			setup: func(service *reconcilingmocks.MockReconciliationService) {
				service.EXPECT().SearchOrders(gomock.Any(), domain.JourneyFilters{
					Search:         "1001",
					PaymentMode:    "cod",
					DeliveryStatus: "rto",
					Limit:          50,
					Offset:         10,
				}).Return(&domain.JourneyPage{Total: 0, Limit: 50, Offset: 10}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Busca com offset inválido",
			req:        httptest.NewRequest(http.MethodGet, "/v1/reconciliation/orders?offset=abc", nil),
			setup:      func(service *reconcilingmocks.MockReconciliationService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := reconcilingmocks.NewMockReconciliationService(gomock.NewController(t))
			tt.setup(service)

			rec := serve(Reconciliation(service), tt.req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

type fakeCronJob struct {
	err       error
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() error {
	f.triggered++
	return f.err
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.err != nil}
}

func TestCronJobs(t *testing.T) {
	t.Run("Dispara a avaliação de anúncios", func(t *testing.T) {
		adStatus := &fakeCronJob{}
		services := CronJobServices{AdStatusSync: adStatus, ReconciliationSync: &fakeCronJob{}}

		rec := serve(CronJobs(services), httptest.NewRequest(http.MethodPost, "/v1/cron/ad-status/run", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, adStatus.triggered)
	})

	t.Run("Sincronização em andamento devolve 409", func(t *testing.T) {
		services := CronJobServices{ReconciliationSync: &fakeCronJob{err: scheduler.ErrSyncAlreadyRunning}}

		rec := serve(CronJobs(services), httptest.NewRequest(http.MethodPost, "/v1/cron/reconciliation/run", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrJobAlreadyRunning, decodeError(t, rec).Code)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rec := serve(CronJobs(CronJobServices{}), httptest.NewRequest(http.MethodPost, "/v1/cron/meta/run", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Status de todos os agendadores", func(t *testing.T) {
		services := CronJobServices{AdStatusSync: &fakeCronJob{}, ReconciliationSync: &fakeCronJob{}}

		rec := serve(CronJobs(services), httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var status map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Contains(t, status, CronJobTypeAdStatus)
		assert.Contains(t, status, CronJobTypeReconciliation)
	})
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name         string
		db           Pinger
		wantStatus   int
		wantDatabase string
	}{
		{name: "sem banco configurado", db: nil, wantStatus: http.StatusOK},
		{name: "banco respondendo", db: fakePinger{}, wantStatus: http.StatusOK, wantDatabase: "up"},
		{name: "banco fora do ar", db: fakePinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantDatabase: "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(Healthcheck(tt.db), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDatabase, body["database"])
			assert.NotEmpty(t, body["time"])
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := serve(Healthcheck(nil), httptest.NewRequest(http.MethodGet, "/v1/nada", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
}
