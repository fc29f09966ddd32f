package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/metaads"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/internal/scaling"
	"github.com/vfg2006/scaling-engine-api/pkg/utils"
)

type evaluateOptions struct {
	File              string
	ProfitPerPurchase float64
	Workers           int
}

type reportOptions struct {
	File           string
	AdName         string
	RollingDays    int
	SpendThreshold float64
}

// evaluateOutput é o resultado por anúncio impresso pelo ads evaluate
type evaluateOutput struct {
	Assessment domain.ScalingAssessment `json:"assessment"`
	Error      string                   `json:"error,omitempty"`
}

func newAdsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Comandos do motor de escala de anúncios",
	}

	cmd.AddCommand(newAdsEvaluateCmd(), newAdsReportCmd())
	return cmd
}

func newAdsEvaluateCmd() *cobra.Command {
	opts := evaluateOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Avalia todos os anúncios de um export do Meta Ads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "export diário do Meta Ads (CSV ou XLSX)")
	cmd.Flags().Float64Var(&opts.ProfitPerPurchase, "profit-per-purchase", scaling.DefaultProfitPerPurchase, "lucro por compra usado no stop loss")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "anúncios avaliados em paralelo")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newAdsReportCmd() *cobra.Command {
	opts := reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monta o relatório diário de um anúncio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "export diário do Meta Ads (CSV ou XLSX)")
	cmd.Flags().StringVar(&opts.AdName, "ad", "", "nome do anúncio")
	cmd.Flags().IntVar(&opts.RollingDays, "rolling-days", 7, "janela da média móvel de ROAS")
	cmd.Flags().Float64Var(&opts.SpendThreshold, "spend-threshold", 5000, "gasto considerado no ROAS dos últimos gastos")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("ad")

	return cmd
}

func runEvaluate(cmd *cobra.Command, opts evaluateOptions) error {
	histories, err := loadHistories(opts.File)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(histories))
	for name := range histories {
		names = append(names, name)
	}
	sort.Strings(names)

	evaluator := scaling.NewEvaluator(scaling.WithProfitPerPurchase(opts.ProfitPerPurchase))
	loader := func(_ context.Context, adName string) ([]domain.AdDailyRecord, error) {
		return histories[adName], nil
	}

	results := evaluator.EvaluateBatch(cmd.Context(), names, loader, opts.Workers)

	evaluatedAt := time.Now()
	out := make([]evaluateOutput, 0, len(names))
	for _, name := range names {
		result := results[name]
		item := evaluateOutput{Assessment: result.Assessment}
		item.Assessment.EvaluatedAt = evaluatedAt
		if result.Failed() {
			item.Error = result.Err.Error()
		}
		out = append(out, item)
	}

	logrus.WithField("ads", len(out)).Info("Avaliação concluída")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(out))
	return err
}

func runReport(cmd *cobra.Command, opts reportOptions) error {
	histories, err := loadHistories(opts.File)
	if err != nil {
		return err
	}

	history, ok := histories[opts.AdName]
	if !ok {
		return fmt.Errorf("anúncio %q não encontrado no arquivo", opts.AdName)
	}

	report := scaling.NewEvaluator().BuildReport(opts.AdName, history, opts.RollingDays, opts.SpendThreshold)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(report))
	return err
}

// loadHistories lê o export e agrupa as linhas por anúncio
func loadHistories(path string) (map[string][]domain.AdDailyRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o export")
	}
	defer file.Close()

	result, err := metaads.Parse(file, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	if result.Failed > 0 {
		logrus.WithFields(logrus.Fields{
			"total":  result.Total,
			"failed": result.Failed,
		}).Warn("Linhas descartadas no export")
	}

	return metaads.GroupByAd(result.Records), nil
}
