package assessing

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/scaling-engine-api/infrastructure/repository"
	"github.com/vfg2006/scaling-engine-api/internal/config"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/internal/scaling"
	"github.com/vfg2006/scaling-engine-api/pkg/apiErrors"
	"github.com/vfg2006/scaling-engine-api/pkg/metric"
)

type AssessmentService interface {
	EvaluateAd(ctx context.Context, adName string) (*domain.ScalingAssessment, error)
	EvaluateAll(ctx context.Context) (*domain.EvaluationRun, error)
	EvaluateRecords(ctx context.Context, records []domain.AdDailyRecord) (map[string]scaling.BatchResult, error)
	ListAssessments(ctx context.Context, filters domain.AssessmentFilters) ([]domain.ScalingAssessment, error)
	GetReport(ctx context.Context, adName string) (*domain.AdReport, error)
}

type Service struct {
	adRecordRepository   repository.AdRecordRepository
	assessmentRepository repository.AssessmentRepository
	evaluator            *scaling.Evaluator
	metrics              *metric.Metrics
	cfg                  *config.Config
	now                  func() time.Time
}

func NewService(
	adRecordRepository repository.AdRecordRepository,
	assessmentRepository repository.AssessmentRepository,
	evaluator *scaling.Evaluator,
	metrics *metric.Metrics,
	cfg *config.Config,
) AssessmentService {
	return &Service{
		adRecordRepository:   adRecordRepository,
		assessmentRepository: assessmentRepository,
		evaluator:            evaluator,
		metrics:              metrics,
		cfg:                  cfg,
		now:                  time.Now,
	}
}

// EvaluateAd avalia um anúncio a partir do histórico salvo e grava o resultado
func (s *Service) EvaluateAd(ctx context.Context, adName string) (*domain.ScalingAssessment, error) {
	history, err := s.adRecordRepository.GetHistory(ctx, adName)
	if err != nil {
		logrus.WithError(err).WithField("ad_name", adName).Error("Erro ao carregar histórico do anúncio")
		return nil, NewAssessmentError(ErrLoadHistory, apiErrors.ErrDatabaseOperation, adName, "Falha ao carregar histórico do anúncio")
	}
	if len(history) == 0 {
		return nil, NewAssessmentError(ErrAdNotFound, apiErrors.ErrAdNotFound, adName, "Nenhum registro encontrado para o anúncio")
	}

	assessment := s.evaluator.Evaluate(adName, history)
	assessment.EvaluatedAt = s.now()
	s.metrics.ObserveAssessment(string(assessment.Phase), string(assessment.Status))

	if err := s.assessmentRepository.Upsert(ctx, assessment); err != nil {
		logrus.WithError(err).WithField("ad_name", adName).Error("Erro ao salvar avaliação")
		return nil, NewAssessmentError(ErrSaveAssessment, apiErrors.ErrDatabaseOperation, adName, "Falha ao salvar avaliação")
	}

	return &assessment, nil
}

// EvaluateAll avalia todos os anúncios com histórico. Falha em um anúncio não
// interrompe os demais; o resultado de erro também é gravado.
func (s *Service) EvaluateAll(ctx context.Context) (*domain.EvaluationRun, error) {
	started := s.now()
	defer s.metrics.ObserveBatch(started)

	names, err := s.adRecordRepository.ListAdNames(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar anúncios")
		return nil, NewAssessmentError(ErrListAds, apiErrors.ErrDatabaseOperation, "", "Falha ao listar anúncios")
	}

	results := s.evaluator.EvaluateBatch(ctx, names, s.adRecordRepository.GetHistory, s.cfg.Scaling.MaxConcurrentJobs)

	run := &domain.EvaluationRun{
		Total:             len(names),
		ByStatus:          make(map[domain.ScalingStatus]int),
		StartedAt:         started,
		ProfitPerPurchase: s.evaluator.ProfitPerPurchase(),
	}

	evaluatedAt := s.now()
	for _, name := range sortedNames(results) {
		result := results[name]
		assessment := result.Assessment
		assessment.EvaluatedAt = evaluatedAt
		run.ByStatus[assessment.Status]++

		if result.Failed() {
			run.Failed++
			run.FailedAds = append(run.FailedAds, name)
			s.metrics.ObserveEvaluationFailure()
			logrus.WithError(result.Err).WithField("ad_name", name).Warn("Falha ao avaliar anúncio")
		} else {
			run.Succeeded++
			s.metrics.ObserveAssessment(string(assessment.Phase), string(assessment.Status))
		}

		if err := s.assessmentRepository.Upsert(ctx, assessment); err != nil {
			run.PersistFailed++
			logrus.WithError(err).WithField("ad_name", name).Error("Erro ao salvar avaliação")
		}
	}

	run.FinishedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"total":     run.Total,
		"succeeded": run.Succeeded,
		"failed":    run.Failed,
		"duration":  run.FinishedAt.Sub(started).String(),
	}).Info("Avaliação de anúncios concluída")

	return run, nil
}

// EvaluateRecords avalia registros enviados diretamente, sem gravar nada
func (s *Service) EvaluateRecords(ctx context.Context, records []domain.AdDailyRecord) (map[string]scaling.BatchResult, error) {
	if len(records) == 0 {
		return nil, NewAssessmentError(ErrEmptyHistoryBody, apiErrors.ErrMissingRequiredData, "", "Envie ao menos um registro diário")
	}

	histories := make(map[string][]domain.AdDailyRecord)
	for _, rec := range records {
		histories[rec.AdName] = append(histories[rec.AdName], rec)
	}

	names := make([]string, 0, len(histories))
	for name := range histories {
		names = append(names, name)
	}
	sort.Strings(names)

	loader := func(_ context.Context, adName string) ([]domain.AdDailyRecord, error) {
		return histories[adName], nil
	}

	results := s.evaluator.EvaluateBatch(ctx, names, loader, s.cfg.Scaling.MaxConcurrentJobs)

	evaluatedAt := s.now()
	for name, result := range results {
		result.Assessment.EvaluatedAt = evaluatedAt
		results[name] = result
	}

	return results, nil
}

func (s *Service) ListAssessments(ctx context.Context, filters domain.AssessmentFilters) ([]domain.ScalingAssessment, error) {
	assessments, err := s.assessmentRepository.List(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar avaliações")
		return nil, NewAssessmentError(ErrListAssessments, apiErrors.ErrDatabaseOperation, "", "Falha ao listar avaliações")
	}
	return assessments, nil
}

// GetReport monta o relatório diário detalhado do anúncio
func (s *Service) GetReport(ctx context.Context, adName string) (*domain.AdReport, error) {
	history, err := s.adRecordRepository.GetHistory(ctx, adName)
	if err != nil {
		logrus.WithError(err).WithField("ad_name", adName).Error("Erro ao carregar histórico do anúncio")
		return nil, NewAssessmentError(ErrLoadHistory, apiErrors.ErrDatabaseOperation, adName, "Falha ao carregar histórico do anúncio")
	}
	if len(history) == 0 {
		return nil, NewAssessmentError(ErrAdNotFound, apiErrors.ErrAdNotFound, adName, "Nenhum registro encontrado para o anúncio")
	}

	report := s.evaluator.BuildReport(adName, history, s.cfg.Scaling.ReportRollingDays, s.cfg.Scaling.ReportSpendThreshold)
	return &report, nil
}

func sortedNames(results map[string]scaling.BatchResult) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
