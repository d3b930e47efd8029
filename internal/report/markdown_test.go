package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/solcheck/internal/loader"
	"github.com/Sena-ops/solcheck/internal/model"
	"github.com/Sena-ops/solcheck/internal/report"
	"github.com/Sena-ops/solcheck/internal/tracker"
)

const auditDef = `
name: "Auditoria Vault"
categories:
  - name: "Reentrancy"
    items:
      - id: RE-1
        description: "checks-effects-interactions"
      - id: RE-2
        description: "guarda nonReentrant"
  - name: "Oracle & Price"
    items:
      - id: OR-1
        description: "oráculo resistente a manipulação"
`

func auditedChecklist(t *testing.T) *model.Checklist {
	t.Helper()
	cl, err := loader.LoadBytes([]byte(auditDef))
	require.NoError(t, err)

	tr := tracker.New(cl)
	require.NoError(t, tr.SetStatus("RE-1", model.StatusDone))
	require.NoError(t, tr.AddFinding("RE-1", model.Finding{
		Severity:    model.SevHigh,
		Description: "falta guarda nonReentrant",
		FilePath:    "contracts/Vault.sol",
		StartLine:   42,
		EndLine:     58,
		Remediation: "usar ReentrancyGuard do OpenZeppelin",
	}))
	require.NoError(t, tr.AddFinding("OR-1", model.Finding{
		Severity:    model.SevCritical,
		Description: "preço lido do spot do pool",
		FilePath:    "contracts/Oracle.sol",
		StartLine:   10,
	}))
	require.NoError(t, tr.AddFinding("RE-2", model.Finding{
		Severity:    model.SevLow,
		Description: "callback ERC-777 sem revisão",
	}))
	return cl
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	t.Parallel()
	cl := auditedChecklist(t)

	first := report.RenderMarkdown(cl)
	second := report.RenderMarkdown(cl)
	assert.Equal(t, first, second)
}

func TestRenderMarkdown_SeverityOrder(t *testing.T) {
	t.Parallel()
	cl := auditedChecklist(t)

	out := report.RenderMarkdown(cl)

	// CRITICAL antes de HIGH antes de LOW, independente da ordem de inserção
	critical := strings.Index(out, "[CRITICAL] OR-1")
	high := strings.Index(out, "[HIGH] RE-1")
	low := strings.Index(out, "[LOW] RE-2")
	require.GreaterOrEqual(t, critical, 0)
	require.GreaterOrEqual(t, high, 0)
	require.GreaterOrEqual(t, low, 0)
	assert.Less(t, critical, high)
	assert.Less(t, high, low)
}

func TestRenderMarkdown_ExecutiveSummary(t *testing.T) {
	t.Parallel()
	cl := auditedChecklist(t)

	out := report.RenderMarkdown(cl)
	assert.Contains(t, out, "## Resumo Executivo")
	assert.Contains(t, out, "Itens verificados: 1/3 (33.3%)")
	assert.Contains(t, out, "CRITICAL: 1 finding(s)")
	assert.Contains(t, out, "HIGH: 1 finding(s)")
	assert.Contains(t, out, "LOW: 1 finding(s)")
	assert.Contains(t, out, "contracts/Vault.sol:42-58")
	assert.Contains(t, out, "usar ReentrancyGuard do OpenZeppelin")
}

func TestRenderMarkdown_NoFindings(t *testing.T) {
	t.Parallel()
	cl, err := loader.LoadBytes([]byte(auditDef))
	require.NoError(t, err)

	out := report.RenderMarkdown(cl)
	assert.Contains(t, out, "Nenhum finding registrado.")
	assert.NotContains(t, out, "## Findings")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()
	cl := auditedChecklist(t)

	data, err := report.RenderJSON(cl)
	require.NoError(t, err)

	var decoded struct {
		Completion float64        `json:"completion"`
		Summary    map[string]int `json:"summary"`
		Findings   []struct {
			ItemID   string `json:"item_id"`
			Category string `json:"category"`
			Severity string `json:"severity"`
		} `json:"findings"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.InDelta(t, 1.0/3.0, decoded.Completion, 1e-9)
	assert.Equal(t, 1, decoded.Summary["CRITICAL"])
	require.Len(t, decoded.Findings, 3)
	assert.Equal(t, "OR-1", decoded.Findings[0].ItemID)
	assert.Equal(t, "Oracle & Price", decoded.Findings[0].Category)
	assert.Equal(t, "RE-1", decoded.Findings[1].ItemID)
	assert.Equal(t, "RE-2", decoded.Findings[2].ItemID)
}

func TestSummaryTable(t *testing.T) {
	t.Parallel()
	cl := auditedChecklist(t)

	out := report.SummaryTable(cl)
	assert.Contains(t, out, "Reentrancy")
	assert.Contains(t, out, "Oracle & Price")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "1/3")
}
