package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/solcheck/internal/logging"
	"github.com/Sena-ops/solcheck/internal/report"
	"github.com/Sena-ops/solcheck/internal/session"
	"github.com/Sena-ops/solcheck/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:   "status [categoria]",
	Short: "Mostra o progresso da auditoria",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.Logger

		cl, err := session.Load(cfg.SessionDir)
		if err != nil {
			logger.Errorw("Erro ao carregar sessão", "erro", err)
			os.Exit(1)
		}
		tr := tracker.New(cl)

		if len(args) == 1 {
			name := args[0]
			cat, ok := cl.Category(name)
			if !ok {
				logger.Errorf("Categoria '%s' não existe no checklist", name)
				os.Exit(1)
			}
			pct, _ := tr.Completion(name)
			fmt.Print(report.CategoryDetail(cat))
			fmt.Printf("\nConclusão: %.1f%%\n", pct*100)
			return
		}

		fmt.Println(report.SummaryTable(cl))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
