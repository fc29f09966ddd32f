package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/scaling-engine-api/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd monta a árvore de comandos do scalectl
func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "scalectl",
		Short:        "Avalia anúncios e concilia pedidos a partir de arquivos exportados",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.Setup(log.Options{Level: logLevel})
			// stdout fica reservado para o JSON de saída
			logrus.SetOutput(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nível de log (debug, info, warn, error)")

	root.AddCommand(newAdsCmd(), newLogisticsCmd())
	return root
}
