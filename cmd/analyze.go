package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/solcheck/internal/analyzer"
	"github.com/Sena-ops/solcheck/internal/logging"
	"github.com/Sena-ops/solcheck/internal/parser"
)

var whichAnalyzer string
var analyzeRecursive bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [caminho]",
	Short: "Roda um analisador externo sobre os contratos Solidity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.Logger
		path := args[0]

		name := whichAnalyzer
		if name == "" {
			name = cfg.Analyzer.Default
		}
		if !cmd.Flags().Changed("recursive") {
			analyzeRecursive = cfg.Analyzer.Recursive
		}

		logger.Infof("Procurando contratos em: %s (recursivo: %v)", path, analyzeRecursive)
		files, err := parser.DetectSolidityFiles(path, analyzeRecursive)
		if err != nil {
			logger.Errorw("Erro ao procurar contratos", "erro", err)
			os.Exit(1)
		}
		if len(files) == 0 {
			logger.Errorf("Nenhum contrato Solidity encontrado em %s", path)
			os.Exit(1)
		}
		logger.Infof("✅ %d contrato(s) encontrado(s)", len(files))
		for _, f := range files {
			fmt.Printf("    • %s\n", f)
		}

		logger.Infof("Executando analisador: %s...", name)

		if err := os.MkdirAll(cfg.SessionDir, 0o755); err != nil {
			logger.Errorw("Erro ao criar diretório de sessão", "erro", err)
			os.Exit(1)
		}

		output, outputPath, err := analyzer.Execute(cfg.SessionDir, name, files)
		if err != nil {
			logger.Errorw("Erro ao executar analisador", "erro", err)
			os.Exit(1)
		}

		if err := os.WriteFile(outputPath, output, 0o644); err != nil {
			logger.Errorw("Erro ao salvar resultados", "erro", err)
			os.Exit(1)
		}
		logger.Infow("Resultado salvo com sucesso", "analisador", name, "arquivo", outputPath)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&whichAnalyzer, "with", "w", "", "Analisador a executar (slither, mythril, echidna)")
	analyzeCmd.Flags().BoolVarP(&analyzeRecursive, "recursive", "r", true, "Procura contratos recursivamente")
	rootCmd.AddCommand(analyzeCmd)
}
