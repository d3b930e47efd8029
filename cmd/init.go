package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/solcheck/internal/loader"
	"github.com/Sena-ops/solcheck/internal/logging"
	"github.com/Sena-ops/solcheck/internal/model"
	"github.com/Sena-ops/solcheck/internal/session"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init [definicao.yaml]",
	Short: "Inicia uma sessão de auditoria a partir de uma definição de checklist",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.Logger

		if session.Exists(cfg.SessionDir) && !forceInit {
			logger.Errorw("Sessão já existe; use --force para recomeçar", "dir", cfg.SessionDir)
			os.Exit(1)
		}

		defPath := cfg.Definition
		if len(args) == 1 {
			defPath = args[0]
		}

		var cl *model.Checklist
		var err error
		if defPath == "" {
			logger.Info("Usando o checklist Solidity embutido")
			cl, err = loader.LoadDefault()
		} else {
			logger.Infof("Carregando definição: %s", defPath)
			cl, err = loader.LoadFile(defPath)
		}
		if err != nil {
			logger.Errorw("Erro ao carregar definição", "erro", err)
			os.Exit(1)
		}

		if err := session.Save(cfg.SessionDir, cl); err != nil {
			logger.Errorw("Erro ao gravar sessão", "erro", err)
			os.Exit(1)
		}

		total := 0
		for _, c := range cl.Categories {
			total += len(c.Items)
		}
		logger.Infow("Sessão iniciada", "categorias", len(cl.Categories), "itens", total, "arquivo", session.Path(cfg.SessionDir))
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Sobrescreve uma sessão existente")
	rootCmd.AddCommand(initCmd)
}
