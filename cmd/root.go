package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/solcheck/internal/config"
	"github.com/Sena-ops/solcheck/internal/logging"
)

const version = "0.1.0"

var cfgFile string
var debugMode bool

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:     "solcheck",
	Short:   "Solcheck - Checklist de Auditoria de Contratos Solidity",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)

		c, err := config.LoadConfig(cfgFile)
		if err != nil {
			fmt.Println("Erro ao carregar configuração:", err)
			os.Exit(1)
		}
		cfg = c
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Arquivo de configuração (default: .solcheck.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
}
