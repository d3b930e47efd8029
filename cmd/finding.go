package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/solcheck/internal/analyzer"
	"github.com/Sena-ops/solcheck/internal/logging"
	"github.com/Sena-ops/solcheck/internal/model"
	"github.com/Sena-ops/solcheck/internal/session"
	"github.com/Sena-ops/solcheck/internal/tracker"
)

var findingSeverity string
var findingDesc string
var findingFile string
var findingStartLine int
var findingEndLine int
var findingFix string
var findingFromTool string

var findingCmd = &cobra.Command{
	Use:   "finding <item-id>",
	Short: "Registra um finding em um item do checklist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.Logger
		itemID := args[0]

		sev, err := model.ParseSeverity(findingSeverity)
		if err != nil {
			logger.Errorw("Severidade inválida", "erro", err)
			os.Exit(1)
		}

		f := model.Finding{
			Severity:    sev,
			Description: findingDesc,
			FilePath:    findingFile,
			StartLine:   findingStartLine,
			EndLine:     findingEndLine,
			Remediation: findingFix,
		}

		// Anexa a saída bruta já capturada de um analisador como evidência.
		if findingFromTool != "" {
			outPath := analyzer.OutputPath(cfg.SessionDir, findingFromTool)
			raw, err := os.ReadFile(outPath)
			if err != nil {
				logger.Errorw("Erro ao ler saída do analisador (rode 'solcheck analyze' antes)",
					"analisador", findingFromTool, "arquivo", outPath, "erro", err)
				os.Exit(1)
			}
			f.ToolName = findingFromTool
			f.Evidence = string(raw)
		}

		if strings.TrimSpace(f.Description) == "" {
			logger.Error("Finding precisa de uma descrição (--desc)")
			os.Exit(1)
		}

		cl, err := session.Load(cfg.SessionDir)
		if err != nil {
			logger.Errorw("Erro ao carregar sessão", "erro", err)
			os.Exit(1)
		}
		tr := tracker.New(cl)

		if err := tr.AddFinding(itemID, f); err != nil {
			logger.Errorw("Erro ao registrar finding", "erro", err)
			os.Exit(1)
		}

		if err := session.Save(cfg.SessionDir, cl); err != nil {
			logger.Errorw("Erro ao gravar sessão", "erro", err)
			os.Exit(1)
		}

		logger.Infow("Finding registrado", "item", itemID, "severidade", sev)
	},
}

func init() {
	findingCmd.Flags().StringVarP(&findingSeverity, "severity", "s", "", "Severidade (critical, high, medium, low, info)")
	findingCmd.Flags().StringVarP(&findingDesc, "desc", "d", "", "Descrição do finding")
	findingCmd.Flags().StringVarP(&findingFile, "file", "f", "", "Contrato afetado (ex: contracts/Vault.sol)")
	findingCmd.Flags().IntVar(&findingStartLine, "start-line", 0, "Linha inicial (1-based)")
	findingCmd.Flags().IntVar(&findingEndLine, "end-line", 0, "Linha final")
	findingCmd.Flags().StringVar(&findingFix, "fix", "", "Correção sugerida")
	findingCmd.Flags().StringVar(&findingFromTool, "from-tool", "", "Anexa a saída de um analisador como evidência (slither, mythril, echidna)")
	_ = findingCmd.MarkFlagRequired("severity")
	rootCmd.AddCommand(findingCmd)
}
