package reconciling

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/scaling-engine-api/infrastructure/repository"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/internal/reconciliation"
	"github.com/vfg2006/scaling-engine-api/pkg/apiErrors"
	"github.com/vfg2006/scaling-engine-api/pkg/metric"
)

type ReconciliationService interface {
	Run(ctx context.Context) (*domain.MatchSummary, error)
	GetDashboard(ctx context.Context, from, to *time.Time) (*domain.MetricsSnapshot, error)
	GetSKUSales(ctx context.Context, from, to *time.Time) (*domain.SKUSalesReport, error)
	SearchOrders(ctx context.Context, filters domain.JourneyFilters) (*domain.JourneyPage, error)
}

type Service struct {
	orderRepository        repository.OrderRepository
	shipmentRepository     repository.ShipmentRepository
	unifiedOrderRepository repository.UnifiedOrderRepository
	metrics                *metric.Metrics
	now                    func() time.Time
}

func NewService(
	orderRepository repository.OrderRepository,
	shipmentRepository repository.ShipmentRepository,
	unifiedOrderRepository repository.UnifiedOrderRepository,
	metrics *metric.Metrics,
) ReconciliationService {
	return &Service{
		orderRepository:        orderRepository,
		shipmentRepository:     shipmentRepository,
		unifiedOrderRepository: unifiedOrderRepository,
		metrics:                metrics,
		now:                    time.Now,
	}
}

// Run concilia todos os pedidos importados com os envios e substitui a tabela
// de pedidos conciliados. Sem pedidos, nada é gravado e o resumo traz a mensagem.
func (s *Service) Run(ctx context.Context) (*domain.MatchSummary, error) {
	orders, err := s.orderRepository.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar pedidos")
		return nil, NewReconciliationError(ErrFetchOrders, apiErrors.ErrDatabaseOperation, "Falha ao buscar pedidos importados")
	}

	shipments, err := s.shipmentRepository.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar envios")
		return nil, NewReconciliationError(ErrFetchShipments, apiErrors.ErrDatabaseOperation, "Falha ao buscar envios importados")
	}

	unified, summary := reconciliation.Match(orders, shipments)
	summary.RanAt = s.now()

	if summary.TotalOrders == 0 {
		logrus.Warn(summary.Message)
		return &summary, nil
	}

	if err := s.unifiedOrderRepository.ReplaceAll(ctx, unified); err != nil {
		logrus.WithError(err).Error("Erro ao gravar pedidos conciliados")
		return nil, NewReconciliationError(ErrSaveUnifiedOrders, apiErrors.ErrDatabaseOperation, "Falha ao gravar pedidos conciliados")
	}

	byCategory := make(map[string]int)
	for _, order := range unified {
		byCategory[string(order.RevenueCategory)]++
	}
	s.metrics.ObserveReconciliation(byCategory)

	logrus.WithFields(logrus.Fields{
		"total_orders": summary.TotalOrders,
		"matched":      summary.Matched,
		"not_shipped":  summary.NotShipped,
	}).Info("Conciliação concluída")

	return &summary, nil
}

func (s *Service) GetDashboard(ctx context.Context, from, to *time.Time) (*domain.MetricsSnapshot, error) {
	orders, err := s.listUnified(ctx, from, to)
	if err != nil {
		return nil, err
	}

	snapshot := reconciliation.ComputeDashboardMetrics(orders, from, to)
	return &snapshot, nil
}

func (s *Service) GetSKUSales(ctx context.Context, from, to *time.Time) (*domain.SKUSalesReport, error) {
	orders, err := s.listUnified(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := reconciliation.ComputeSKUSales(orders, from, to)
	return &report, nil
}

func (s *Service) SearchOrders(ctx context.Context, filters domain.JourneyFilters) (*domain.JourneyPage, error) {
	page, err := s.unifiedOrderRepository.Search(ctx, reconciliation.NormalizeJourneyFilters(filters))
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar pedidos conciliados")
		return nil, NewReconciliationError(ErrFetchUnifiedOrders, apiErrors.ErrDatabaseOperation, "Falha ao buscar pedidos conciliados")
	}
	return &page, nil
}

func (s *Service) listUnified(ctx context.Context, from, to *time.Time) ([]domain.UnifiedOrder, error) {
	orders, err := s.unifiedOrderRepository.List(ctx, from, to)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar pedidos conciliados")
		return nil, NewReconciliationError(ErrFetchUnifiedOrders, apiErrors.ErrDatabaseOperation, "Falha ao buscar pedidos conciliados")
	}
	return orders, nil
}
