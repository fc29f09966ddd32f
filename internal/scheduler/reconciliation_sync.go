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

const reconciliationSyncJob = "reconciliation_sync"

// ReconciliationSyncConfig representa a configuração do agendador de conciliação
type ReconciliationSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReconciliationSyncService refaz periodicamente a conciliação de pedidos e envios
type ReconciliationSyncService struct {
	scheduler   *gocron.Scheduler
	config      ReconciliationSyncConfig
	reconciler  Reconciler
	metrics     *metric.Metrics
	baseCtx     context.Context
	state       syncState
	lastSummary *domain.MatchSummary
}

// NewReconciliationSyncService cria uma nova instância do serviço de conciliação agendada
func NewReconciliationSyncService(
	reconciler Reconciler,
	metrics *metric.Metrics,
	appConfig *config.Config,
) *ReconciliationSyncService {
	syncConfig := ReconciliationSyncConfig{
		CronSchedule: appConfig.ReconciliationSync.CronSchedule,
		SyncEnabled:  appConfig.ReconciliationSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de conciliação carregada")

	return &ReconciliationSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		reconciler: reconciler,
		metrics:    metrics,
		baseCtx:    context.Background(),
	}
}

// Start inicia o agendador
func (s *ReconciliationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Conciliação agendada desabilitada por configuração")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de conciliação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.state.begin(time.Now()) {
			logrus.Info("Conciliação já em andamento, ignorando")
			return
		}
		s.syncReconciliation(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar conciliação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de conciliação")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReconciliation executa uma conciliação completa. O chamador já marcou o início em state.
func (s *ReconciliationSyncService) syncReconciliation(ctx context.Context) {
	startTime := time.Now()
	logrus.Info("Iniciando conciliação de pedidos e envios")

	summary, err := s.reconciler.Run(ctx)
	s.metrics.ObserveJob(reconciliationSyncJob, err)
	if err == nil {
		s.state.mu.Lock()
		s.lastSummary = summary
		s.state.mu.Unlock()
	}
	s.state.finish(time.Now(), err)

	if err != nil {
		logrus.WithError(err).WithField("job", reconciliationSyncJob).Error("Erro na conciliação agendada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"job":          reconciliationSyncJob,
		"duration":     time.Since(startTime).String(),
		"total_orders": summary.TotalOrders,
		"matched":      summary.Matched,
		"not_shipped":  summary.NotShipped,
	}).Info("Conciliação agendada concluída")
}

// TriggerManualSync inicia manualmente uma conciliação
func (s *ReconciliationSyncService) TriggerManualSync() error {
	if !s.state.begin(time.Now()) {
		logrus.Info("Conciliação já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando conciliação manual")
	go s.syncReconciliation(s.baseCtx)
	return nil
}

// GetStatus retorna o status atual do agendador
func (s *ReconciliationSyncService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule

	s.state.mu.Lock()
	if s.lastSummary != nil {
		status["last_summary"] = *s.lastSummary
	}
	s.state.mu.Unlock()

	return status
}
