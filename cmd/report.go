package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/solcheck/internal/logging"
	"github.com/Sena-ops/solcheck/internal/report"
	"github.com/Sena-ops/solcheck/internal/sarif"
	"github.com/Sena-ops/solcheck/internal/session"
)

var reportFormat string
var reportFile string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Gera o relatório de findings da auditoria",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.Logger

		cl, err := session.Load(cfg.SessionDir)
		if err != nil {
			logger.Errorw("Erro ao carregar sessão", "erro", err)
			os.Exit(1)
		}

		format := reportFormat
		if format == "" {
			format = cfg.Report.Format
		}
		outFile := reportFile
		if outFile == "" {
			outFile = cfg.Report.File
		}

		var data []byte
		switch strings.ToLower(format) {
		case "markdown":
			data = []byte(report.RenderMarkdown(cl))
		case "json":
			data, err = report.RenderJSON(cl)
		case "sarif":
			data, err = sarif.Render(cl, "solcheck", version)
		default:
			logger.Errorf("Formato '%s' inválido (markdown, json ou sarif)", format)
			os.Exit(1)
		}
		if err != nil {
			logger.Errorw("Erro ao gerar relatório", "erro", err)
			os.Exit(1)
		}

		if outFile == "" {
			fmt.Println(string(data))
			return
		}

		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			logger.Errorw("Erro ao salvar relatório", "erro", err)
			os.Exit(1)
		}
		logger.Infow("Relatório salvo com sucesso", "formato", format, "arquivo", outFile)
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "output", "o", "", "Formato da saída (markdown, json, sarif)")
	reportCmd.Flags().StringVar(&reportFile, "file", "", "Arquivo de destino (default: stdout)")
	rootCmd.AddCommand(reportCmd)
}
