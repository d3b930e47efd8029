package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/solcheck/internal/logging"
	"github.com/Sena-ops/solcheck/internal/model"
	"github.com/Sena-ops/solcheck/internal/session"
	"github.com/Sena-ops/solcheck/internal/tracker"
)

var checkStatus string

var checkCmd = &cobra.Command{
	Use:   "check <item-id>",
	Short: "Marca o status de um item do checklist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.Logger
		itemID := args[0]

		st, err := model.ParseStatus(checkStatus)
		if err != nil {
			logger.Errorw("Status inválido", "erro", err)
			os.Exit(1)
		}

		cl, err := session.Load(cfg.SessionDir)
		if err != nil {
			logger.Errorw("Erro ao carregar sessão", "erro", err)
			os.Exit(1)
		}
		tr := tracker.New(cl)

		if err := tr.SetStatus(itemID, st); err != nil {
			logger.Errorw("Erro ao marcar item", "erro", err)
			os.Exit(1)
		}

		if err := session.Save(cfg.SessionDir, cl); err != nil {
			logger.Errorw("Erro ao gravar sessão", "erro", err)
			os.Exit(1)
		}

		pct, _ := tr.Completion("")
		logger.Infow("Item atualizado", "item", itemID, "status", st, "conclusão", pct)
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkStatus, "status", "s", "done", "Novo status do item (done, na, pending)")
	rootCmd.AddCommand(checkCmd)
}
