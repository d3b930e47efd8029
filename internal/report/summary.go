package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sena-ops/solcheck/internal/model"
)

var (
	colorCritical = color.New(color.FgRed, color.Bold)
	colorHigh     = color.New(color.FgRed)
	colorMedium   = color.New(color.FgYellow)
	colorLow      = color.New(color.FgCyan)
	colorInfo     = color.New(color.FgWhite)
	colorDone     = color.New(color.FgGreen)
	colorNA       = color.New(color.FgHiBlack)
)

// SummaryTable monta a tabela de progresso por categoria para o terminal.
func SummaryTable(cl *model.Checklist) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Categoria", "Itens", "Concluído", "Findings"})

	totalItems, totalDone, totalFindings := 0, 0, 0
	for _, cat := range cl.Categories {
		done, findings := 0, 0
		for _, it := range cat.Items {
			if it.Status != model.StatusPending {
				done++
			}
			findings += len(it.Findings)
		}
		totalItems += len(cat.Items)
		totalDone += done
		totalFindings += findings

		pct := float64(done) / float64(len(cat.Items)) * 100
		t.AppendRow(table.Row{
			cat.Name,
			fmt.Sprintf("%d/%d", done, len(cat.Items)),
			fmt.Sprintf("%.0f%%", pct),
			findings,
		})
	}

	overall := 0.0
	if totalItems > 0 {
		overall = float64(totalDone) / float64(totalItems) * 100
	}
	t.AppendFooter(table.Row{
		"TOTAL",
		fmt.Sprintf("%d/%d", totalDone, totalItems),
		fmt.Sprintf("%.1f%%", overall),
		totalFindings,
	})

	return t.Render()
}

// CategoryDetail lista os itens de uma categoria com status colorido.
func CategoryDetail(cat *model.Category) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", cat.Name))
	for _, it := range cat.Items {
		b.WriteString(fmt.Sprintf("  %s %s — %s\n", statusLabel(it.Status), it.ID, it.Description))
		for _, f := range it.Findings {
			b.WriteString(fmt.Sprintf("      %s %s\n", SeverityLabel(f.Severity), f.Description))
		}
	}
	return b.String()
}

func statusLabel(st model.Status) string {
	switch st {
	case model.StatusDone:
		return colorDone.Sprint("[✓]")
	case model.StatusNA:
		return colorNA.Sprint("[–]")
	default:
		return "[ ]"
	}
}

// SeverityLabel devolve a severidade colorida para o terminal.
func SeverityLabel(s model.Severity) string {
	label := fmt.Sprintf("[%s]", s)
	switch s {
	case model.SevCritical:
		return colorCritical.Sprint(label)
	case model.SevHigh:
		return colorHigh.Sprint(label)
	case model.SevMedium:
		return colorMedium.Sprint(label)
	case model.SevLow:
		return colorLow.Sprint(label)
	default:
		return colorInfo.Sprint(label)
	}
}
