package sarif

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/solcheck/internal/model"
)

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Message   Message    `json:"message"`
	Level     string     `json:"level"` // error, warning, note
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine,omitempty"`
}

// Render converte os findings do checklist num log SARIF 2.1.0.
// O ruleId de cada resultado é o id do item do checklist; a ordem segue
// a das categorias e itens na definição.
func Render(cl *model.Checklist, toolName, toolVersion string) ([]byte, error) {
	var results []Result
	for _, cat := range cl.Categories {
		for _, item := range cat.Items {
			for _, f := range item.Findings {
				fileURI := toURI(f.FilePath)
				if strings.TrimSpace(fileURI) == "" {
					fileURI = "UNKNOWN"
				}
				start := f.StartLine
				if start <= 0 {
					start = 1
				}

				results = append(results, Result{
					RuleID: item.ID,
					Level:  sevToLevel(f.Severity),
					Message: Message{
						Text: strings.TrimSpace(f.Description),
					},
					Locations: []Location{
						{
							PhysicalLocation: PhysicalLocation{
								ArtifactLocation: ArtifactLocation{
									URI: fileURI,
								},
								Region: Region{
									StartLine: start,
									EndLine:   f.EndLine,
								},
							},
						},
					},
				})
			}
		}
	}

	log := Log{
		Version: "2.1.0",
		// schema RTM reconhecido por GitHub/VSCode
		Schema: "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    toolName,
						Version: toolVersion,
					},
				},
				Results: results,
			},
		},
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sarif: %w", err)
	}
	return data, nil
}

// Export grava o log SARIF em <outDir>/<fileBase>.sarif.
func Export(cl *model.Checklist, outDir, fileBase, toolName, toolVersion string) (string, error) {
	data, err := Render(cl, toolName, toolVersion)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("criar dir sarif: %w", err)
	}
	outPath := filepath.Join(outDir, fileBase+".sarif")

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("escrever sarif: %w", err)
	}
	return outPath, nil
}

func sevToLevel(s model.Severity) string {
	switch s {
	case model.SevCritical, model.SevHigh:
		return "error"
	case model.SevMedium:
		return "warning"
	default:
		return "note"
	}
}

func toURI(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}
