package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/scaling-engine-api/internal/config"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/pkg/metric"
)

const adStatusSyncJob = "ad_status_sync"

// AdStatusSyncConfig representa a configuração do agendador de avaliação de anúncios
type AdStatusSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// AdStatusSyncService reavalia periodicamente o status de todos os anúncios
type AdStatusSyncService struct {
	scheduler *gocron.Scheduler
	config    AdStatusSyncConfig
	evaluator AdStatusEvaluator
	metrics   *metric.Metrics
	baseCtx   context.Context
	state     syncState
	lastRun   *domain.EvaluationRun
}

// NewAdStatusSyncService cria uma nova instância do serviço de avaliação agendada
func NewAdStatusSyncService(
	evaluator AdStatusEvaluator,
	metrics *metric.Metrics,
	appConfig *config.Config,
) *AdStatusSyncService {
	syncConfig := AdStatusSyncConfig{
		CronSchedule:      appConfig.AdStatusSync.CronSchedule,
		MaxConcurrentJobs: appConfig.Scaling.MaxConcurrentJobs,
		SyncEnabled:       appConfig.AdStatusSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de avaliação de anúncios carregada")

	return &AdStatusSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		evaluator: evaluator,
		metrics:   metrics,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *AdStatusSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Avaliação agendada de anúncios desabilitada por configuração")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de avaliação de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.state.begin(time.Now()) {
			logrus.Info("Avaliação de anúncios já em andamento, ignorando")
			return
		}
		s.syncAdStatuses(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar avaliação de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de avaliação de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAdStatuses executa uma avaliação completa. O chamador já marcou o início em state.
func (s *AdStatusSyncService) syncAdStatuses(ctx context.Context) {
	startTime := time.Now()
	logrus.Info("Iniciando avaliação de todos os anúncios")

	run, err := s.evaluator.EvaluateAll(ctx)
	s.metrics.ObserveJob(adStatusSyncJob, err)
	if err == nil {
		s.state.mu.Lock()
		s.lastRun = run
		s.state.mu.Unlock()
	}
	s.state.finish(time.Now(), err)

	if err != nil {
		logrus.WithError(err).WithField("job", adStatusSyncJob).Error("Erro na avaliação agendada de anúncios")
		return
	}

	logrus.WithFields(logrus.Fields{
		"job":       adStatusSyncJob,
		"duration":  time.Since(startTime).String(),
		"total":     run.Total,
		"succeeded": run.Succeeded,
		"failed":    run.Failed,
	}).Info("Avaliação de anúncios concluída")
}

// TriggerManualSync inicia manualmente uma avaliação de todos os anúncios
func (s *AdStatusSyncService) TriggerManualSync() error {
	if !s.state.begin(time.Now()) {
		logrus.Info("Avaliação de anúncios já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando avaliação manual de anúncios")
	go s.syncAdStatuses(s.baseCtx)
	return nil
}

// GetStatus retorna o status atual do agendador
func (s *AdStatusSyncService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["sync_max_concurrent"] = s.config.MaxConcurrentJobs

	s.state.mu.Lock()
	if s.lastRun != nil {
		status["last_run"] = *s.lastRun
	}
	s.state.mu.Unlock()

	return status
}
