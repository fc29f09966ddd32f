package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/scaling-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/scaling-engine-api/infrastructure/repository"
	"github.com/vfg2006/scaling-engine-api/internal/api"
	"github.com/vfg2006/scaling-engine-api/internal/api/handler"
	"github.com/vfg2006/scaling-engine-api/internal/config"
	"github.com/vfg2006/scaling-engine-api/internal/scaling"
	"github.com/vfg2006/scaling-engine-api/internal/scheduler"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/assessing"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/importing"
	"github.com/vfg2006/scaling-engine-api/internal/usecases/reconciling"
	"github.com/vfg2006/scaling-engine-api/pkg/log"
	"github.com/vfg2006/scaling-engine-api/pkg/metric"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(log.Options{
		Level: cfg.App.LogLevel,
		File:  cfg.App.LogFile,
	})
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metrics := metric.NewMetrics()

	adRecordRepo := repository.NewAdRecordRepository(pgConn)
	assessmentRepo := repository.NewAssessmentRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	shipmentRepo := repository.NewShipmentRepository(pgConn)
	unifiedOrderRepo := repository.NewUnifiedOrderRepository(pgConn)
	importLogRepo := repository.NewImportLogRepository(pgConn)

	evaluator := scaling.NewEvaluator(scaling.WithProfitPerPurchase(cfg.Scaling.ProfitPerPurchase))

	assessmentService := assessing.NewService(adRecordRepo, assessmentRepo, evaluator, metrics, cfg)
	reconciliationService := reconciling.NewService(orderRepo, shipmentRepo, unifiedOrderRepo, metrics)
	importService := importing.NewService(adRecordRepo, orderRepo, shipmentRepo, importLogRepo, metrics)

	adStatusSyncService := scheduler.NewAdStatusSyncService(assessmentService, metrics, cfg)
	reconciliationSyncService := scheduler.NewReconciliationSyncService(reconciliationService, metrics, cfg)

	// Inicia os agendadores em background
	if err := adStatusSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de avaliação de anúncios")
	} else {
		logrus.Info("Agendador de avaliação de anúncios iniciado com sucesso")
	}

	if err := reconciliationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de conciliação")
	} else {
		logrus.Info("Agendador de conciliação iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Assessment:     assessmentService,
		Reconciliation: reconciliationService,
		Import:         importService,
		CronJobs: handler.CronJobServices{
			AdStatusSync:       adStatusSyncService,
			ReconciliationSync: reconciliationSyncService,
		},
		Database: pgConn,
	}, metrics)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// changeToSourceDir usa o diretório do main como base para achar o .env
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
