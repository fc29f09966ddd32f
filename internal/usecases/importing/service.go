package importing

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/metaads"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/prozo"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/tabular"
	"github.com/vfg2006/scaling-engine-api/infrastructure/repository"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/pkg/apiErrors"
	"github.com/vfg2006/scaling-engine-api/pkg/metric"
	"github.com/vfg2006/scaling-engine-api/pkg/utils"
)

type ImportService interface {
	Import(ctx context.Context, source domain.ImportSource, fileName string, file io.Reader) (*domain.ImportResult, error)
	ListImports(ctx context.Context, limit int) ([]domain.ImportResult, error)
}

type Service struct {
	adRecordRepository  repository.AdRecordRepository
	orderRepository     repository.OrderRepository
	shipmentRepository  repository.ShipmentRepository
	importLogRepository repository.ImportLogRepository
	metrics             *metric.Metrics
	generateID          func() (string, error)
	now                 func() time.Time
}

func NewService(
	adRecordRepository repository.AdRecordRepository,
	orderRepository repository.OrderRepository,
	shipmentRepository repository.ShipmentRepository,
	importLogRepository repository.ImportLogRepository,
	metrics *metric.Metrics,
) ImportService {
	return &Service{
		adRecordRepository:  adRecordRepository,
		orderRepository:     orderRepository,
		shipmentRepository:  shipmentRepository,
		importLogRepository: importLogRepository,
		metrics:             metrics,
		generateID:          utils.GenerateID,
		now:                 time.Now,
	}
}

// ParseSource aceita tanto o nome da rota (ads, orders, shipments) quanto o
// nome da origem (meta_ads, shopify, prozo)
func ParseSource(value string) (domain.ImportSource, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ads", string(domain.ImportSourceMetaAds):
		return domain.ImportSourceMetaAds, true
	case "orders", string(domain.ImportSourceShopify):
		return domain.ImportSourceShopify, true
	case "shipments", string(domain.ImportSourceProzo):
		return domain.ImportSourceProzo, true
	default:
		return "", false
	}
}

// Import lê o arquivo da origem informada e grava os registros. Cada carga
// recebe um batch id próprio e uma linha no log de importações.
func (s *Service) Import(ctx context.Context, source domain.ImportSource, fileName string, file io.Reader) (*domain.ImportResult, error) {
	batchID, err := s.generateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar batch id")
		return nil, NewImportError(err, apiErrors.ErrInternalServer, source, "Falha ao gerar identificador da carga")
	}

	result := &domain.ImportResult{
		BatchID:  batchID,
		Source:   source,
		FileName: fileName,
	}

	logger := logrus.WithFields(logrus.Fields{
		"batch_id":  batchID,
		"source":    source,
		"file_name": fileName,
	})

	switch source {
	case domain.ImportSourceMetaAds:
		err = s.importAds(ctx, file, result)
	case domain.ImportSourceShopify:
		err = s.importOrders(ctx, file, result)
	case domain.ImportSourceProzo:
		err = s.importShipments(ctx, file, result)
	default:
		return nil, NewImportError(ErrUnsupportedSource, apiErrors.ErrUnsupportedSource, source, "Use ads, orders ou shipments")
	}
	if err != nil {
		logger.WithError(err).Error("Erro ao importar arquivo")
		return nil, err
	}

	result.ImportedAt = s.now()

	if err := s.importLogRepository.Save(ctx, *result); err != nil {
		// os registros já foram gravados, a carga não é desfeita
		logger.WithError(err).Warn("Erro ao gravar log de importação")
	}

	s.metrics.ObserveImport(string(source), result.RecordsNew, result.RecordsUpdated, result.RecordsFailed)

	logger.WithFields(logrus.Fields{
		"records_total":   result.RecordsTotal,
		"records_new":     result.RecordsNew,
		"records_updated": result.RecordsUpdated,
		"records_failed":  result.RecordsFailed,
	}).Info("Importação concluída")

	return result, nil
}

func (s *Service) importAds(ctx context.Context, file io.Reader, result *domain.ImportResult) error {
	parsed, err := metaads.Parse(file, result.FileName)
	if err != nil {
		return parseError(err, result.Source)
	}

	for i := range parsed.Records {
		parsed.Records[i].ImportBatchID = result.BatchID
	}

	result.RecordsTotal = parsed.Total
	result.RecordsFailed = parsed.Failed
	result.RecordsNew, result.RecordsUpdated, err = s.adRecordRepository.UpsertMany(ctx, parsed.Records)
	if err != nil {
		return NewImportError(ErrSaveRecords, apiErrors.ErrDatabaseOperation, result.Source, err.Error())
	}
	return nil
}

func (s *Service) importOrders(ctx context.Context, file io.Reader, result *domain.ImportResult) error {
	parsed, err := shopify.Parse(file, result.FileName)
	if err != nil {
		return parseError(err, result.Source)
	}

	for i := range parsed.Orders {
		parsed.Orders[i].ImportBatchID = result.BatchID
	}

	result.RecordsTotal = len(parsed.Orders)
	result.LineItemsCount = parsed.LineItemsCount
	result.RecordsNew, result.RecordsUpdated, err = s.orderRepository.UpsertMany(ctx, parsed.Orders)
	if err != nil {
		return NewImportError(ErrSaveRecords, apiErrors.ErrDatabaseOperation, result.Source, err.Error())
	}
	return nil
}

func (s *Service) importShipments(ctx context.Context, file io.Reader, result *domain.ImportResult) error {
	parsed, err := prozo.Parse(file, result.FileName)
	if err != nil {
		return parseError(err, result.Source)
	}

	for i := range parsed.Shipments {
		parsed.Shipments[i].ImportBatchID = result.BatchID
	}

	result.RecordsTotal = parsed.Total
	result.RecordsFailed = parsed.Failed
	result.RecordsNew, result.RecordsUpdated, err = s.shipmentRepository.UpsertMany(ctx, parsed.Shipments)
	if err != nil {
		return NewImportError(ErrSaveRecords, apiErrors.ErrDatabaseOperation, result.Source, err.Error())
	}
	return nil
}

func (s *Service) ListImports(ctx context.Context, limit int) ([]domain.ImportResult, error) {
	imports, err := s.importLogRepository.ListRecent(ctx, limit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar importações")
		return nil, NewImportError(ErrListImports, apiErrors.ErrDatabaseOperation, "", "Falha ao listar importações")
	}
	return imports, nil
}

// parseError separa colunas ausentes de arquivos ilegíveis
func parseError(err error, source domain.ImportSource) error {
	var missing *tabular.MissingColumnsError
	if errors.As(err, &missing) {
		return NewImportError(ErrMissingColumns, apiErrors.ErrMissingColumns, source, missing.Error())
	}
	return NewImportError(ErrUnreadableFile, apiErrors.ErrUnreadableFile, source, err.Error())
}
