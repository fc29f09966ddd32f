package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/prozo"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/internal/reconciliation"
	"github.com/vfg2006/scaling-engine-api/pkg/utils"
)

type reconcileOptions struct {
	OrdersFile    string
	ShipmentsFile string
	From          string
	To            string
}

type journeyOptions struct {
	reconcileOptions
	Search         string
	PaymentMode    string
	DeliveryStatus string
	Limit          int
	Offset         int
}

// reconcileOutput junta o resumo da conciliação e as métricas do período
type reconcileOutput struct {
	Summary   domain.MatchSummary    `json:"summary"`
	Dashboard domain.MetricsSnapshot `json:"dashboard"`
	SKUSales  domain.SKUSalesReport  `json:"sku_sales"`
}

func newLogisticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logistics",
		Short: "Conciliação de pedidos da loja com envios da transportadora",
	}

	cmd.AddCommand(newReconcileCmd(), newJourneyCmd())
	return cmd
}

func bindReconcileFlags(cmd *cobra.Command, opts *reconcileOptions) {
	cmd.Flags().StringVar(&opts.OrdersFile, "orders", "", "export de pedidos do Shopify (CSV ou XLSX)")
	cmd.Flags().StringVar(&opts.ShipmentsFile, "shipments", "", "relatório MIS da Prozo (CSV ou XLSX)")
	cmd.Flags().StringVar(&opts.From, "from", "", "data inicial (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.To, "to", "", "data final (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("orders")
	_ = cmd.MarkFlagRequired("shipments")
}

func newReconcileCmd() *cobra.Command {
	opts := reconcileOptions{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Concilia os arquivos e imprime o painel do período",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReconcile(cmd, opts)
		},
	}

	bindReconcileFlags(cmd, &opts)
	return cmd
}

func newJourneyCmd() *cobra.Command {
	opts := journeyOptions{}

	cmd := &cobra.Command{
		Use:   "journey",
		Short: "Busca pedidos conciliados por id, email, telefone ou AWB",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJourney(cmd, opts)
		},
	}

	bindReconcileFlags(cmd, &opts.reconcileOptions)
	cmd.Flags().StringVar(&opts.Search, "search", "", "termo de busca")
	cmd.Flags().StringVar(&opts.PaymentMode, "payment-mode", "", "Prepaid ou COD")
	cmd.Flags().StringVar(&opts.DeliveryStatus, "delivery-status", "", "status de entrega")
	cmd.Flags().IntVar(&opts.Limit, "limit", reconciliation.DefaultJourneyLimit, "máximo de pedidos")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "deslocamento da página")

	return cmd
}

func runReconcile(cmd *cobra.Command, opts reconcileOptions) error {
	from, to, err := parseRange(opts.From, opts.To)
	if err != nil {
		return err
	}

	unified, summary, err := reconcileFiles(opts)
	if err != nil {
		return err
	}

	out := reconcileOutput{
		Summary:   summary,
		Dashboard: reconciliation.ComputeDashboardMetrics(unified, from, to),
		SKUSales:  reconciliation.ComputeSKUSales(unified, from, to),
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(out))
	return err
}

func runJourney(cmd *cobra.Command, opts journeyOptions) error {
	from, to, err := parseRange(opts.From, opts.To)
	if err != nil {
		return err
	}

	unified, _, err := reconcileFiles(opts.reconcileOptions)
	if err != nil {
		return err
	}

	page := reconciliation.SearchJourney(unified, domain.JourneyFilters{
		Search:         opts.Search,
		PaymentMode:    opts.PaymentMode,
		DeliveryStatus: opts.DeliveryStatus,
		StartDate:      from,
		EndDate:        to,
		Limit:          opts.Limit,
		Offset:         opts.Offset,
	})

	_, err = fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(page))
	return err
}

// reconcileFiles lê os dois arquivos e executa o casamento em memória
func reconcileFiles(opts reconcileOptions) ([]domain.UnifiedOrder, domain.MatchSummary, error) {
	ordersFile, err := os.Open(opts.OrdersFile)
	if err != nil {
		return nil, domain.MatchSummary{}, errors.Wrap(err, "erro ao abrir o export de pedidos")
	}
	defer ordersFile.Close()

	orders, err := shopify.Parse(ordersFile, filepath.Base(opts.OrdersFile))
	if err != nil {
		return nil, domain.MatchSummary{}, err
	}

	shipmentsFile, err := os.Open(opts.ShipmentsFile)
	if err != nil {
		return nil, domain.MatchSummary{}, errors.Wrap(err, "erro ao abrir o relatório de envios")
	}
	defer shipmentsFile.Close()

	shipments, err := prozo.Parse(shipmentsFile, filepath.Base(opts.ShipmentsFile))
	if err != nil {
		return nil, domain.MatchSummary{}, err
	}

	unified, summary := reconciliation.Match(orders.Orders, shipments.Shipments)
	summary.RanAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"orders":    summary.TotalOrders,
		"matched":   summary.Matched,
		"shipments": len(shipments.Shipments),
	}).Info("Conciliação concluída")

	return unified, summary, nil
}

func parseRange(fromValue, toValue string) (*time.Time, *time.Time, error) {
	from, err := utils.ParseDate(fromValue)
	if err != nil {
		return nil, nil, errors.Wrap(err, "data inicial inválida")
	}

	to, err := utils.ParseDate(toValue)
	if err != nil {
		return nil, nil, errors.Wrap(err, "data final inválida")
	}

	return from, to, nil
}
