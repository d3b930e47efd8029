package model

import "strings"

type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
	SevInfo     Severity = "INFO"
)

// Rank retorna o peso da severidade para ordenação (CRITICAL primeiro).
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 0
	case SevHigh:
		return 1
	case SevMedium:
		return 2
	case SevLow:
		return 3
	default:
		return 4
	}
}

// ParseSeverity normaliza a severidade digitada pelo auditor.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL", "CRITICO", "CRÍTICO":
		return SevCritical, nil
	case "HIGH", "ALTO", "ALTA":
		return SevHigh, nil
	case "MEDIUM", "MEDIO", "MÉDIO", "MEDIA", "MÉDIA":
		return SevMedium, nil
	case "LOW", "BAIXO", "BAIXA":
		return SevLow, nil
	case "INFO", "INFORMATIVO":
		return SevInfo, nil
	default:
		return "", &ValidationError{Field: "severity", Value: s}
	}
}

type Finding struct {
	Severity    Severity `json:"severity" yaml:"severity"`                           // severidade normalizada
	Description string   `json:"description" yaml:"description"`                     // descrição curta do problema
	FilePath    string   `json:"file_path,omitempty" yaml:"file_path,omitempty"`     // contrato afetado (ex: contracts/Vault.sol)
	StartLine   int      `json:"start_line,omitempty" yaml:"start_line,omitempty"`   // 1-based
	EndLine     int      `json:"end_line,omitempty" yaml:"end_line,omitempty"`       // opcional (0 = sem fim)
	Remediation string   `json:"remediation,omitempty" yaml:"remediation,omitempty"` // correção sugerida
	ToolName    string   `json:"tool_name,omitempty" yaml:"tool_name,omitempty"`     // "slither" | "mythril" | "echidna" | "" (manual)
	Evidence    string   `json:"evidence,omitempty" yaml:"evidence,omitempty"`       // saída bruta da ferramenta, texto puro
}
