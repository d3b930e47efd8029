package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Sena-ops/solcheck/internal/model"
)

// entry posiciona um finding dentro do checklist para ordenação.
type entry struct {
	catIdx  int
	itemIdx int
	seq     int // ordem de inserção dentro do item
	cat     *model.Category
	item    *model.Item
	finding *model.Finding
}

// collect achata os findings preservando a posição estrutural.
func collect(cl *model.Checklist) []entry {
	var out []entry
	for ci := range cl.Categories {
		cat := &cl.Categories[ci]
		for ii := range cat.Items {
			item := &cat.Items[ii]
			for fi := range item.Findings {
				out = append(out, entry{
					catIdx:  ci,
					itemIdx: ii,
					seq:     fi,
					cat:     cat,
					item:    item,
					finding: &item.Findings[fi],
				})
			}
		}
	}
	return out
}

// sortEntries ordena por severidade decrescente (CRITICAL primeiro), depois
// pela ordem das categorias e dos itens na definição. Determinístico: nenhum
// critério depende de hora de inserção ou iteração de map.
func sortEntries(es []entry) {
	sort.SliceStable(es, func(i, j int) bool {
		if es[i].finding.Severity.Rank() != es[j].finding.Severity.Rank() {
			return es[i].finding.Severity.Rank() < es[j].finding.Severity.Rank()
		}
		if es[i].catIdx != es[j].catIdx {
			return es[i].catIdx < es[j].catIdx
		}
		if es[i].itemIdx != es[j].itemIdx {
			return es[i].itemIdx < es[j].itemIdx
		}
		return es[i].seq < es[j].seq
	})
}

var severityOrder = []model.Severity{
	model.SevCritical, model.SevHigh, model.SevMedium, model.SevLow, model.SevInfo,
}

// RenderMarkdown serializa o estado atual do checklist num relatório markdown.
// Saída idêntica byte a byte para o mesmo estado de entrada.
func RenderMarkdown(cl *model.Checklist) string {
	var b strings.Builder

	title := cl.Name
	if title == "" {
		title = "Auditoria"
	}
	b.WriteString(fmt.Sprintf("# 🔐 Relatório de Auditoria — %s\n\n", title))

	b.WriteString("## Resumo Executivo\n\n")

	total, done := 0, 0
	counts := map[model.Severity]int{}
	for _, c := range cl.Categories {
		for _, it := range c.Items {
			total++
			if it.Status != model.StatusPending {
				done++
			}
			for _, f := range it.Findings {
				counts[f.Severity]++
			}
		}
	}

	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total) * 100
	}
	b.WriteString(fmt.Sprintf("- Itens verificados: %d/%d (%.1f%%)\n", done, total, pct))
	for _, sev := range severityOrder {
		if counts[sev] > 0 {
			b.WriteString(fmt.Sprintf("- %s: %d finding(s)\n", sev, counts[sev]))
		}
	}
	b.WriteString("\n")

	entries := collect(cl)
	if len(entries) == 0 {
		b.WriteString("Nenhum finding registrado.\n")
		return b.String()
	}

	sortEntries(entries)

	b.WriteString("## Findings\n\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("### [%s] %s — %s\n\n", e.finding.Severity, e.item.ID, e.cat.Name))
		b.WriteString(fmt.Sprintf("- Item: %s\n", e.item.Description))
		b.WriteString(fmt.Sprintf("- Descrição: %s\n", e.finding.Description))
		if e.finding.FilePath != "" {
			b.WriteString(fmt.Sprintf("- Local: %s\n", formatLocation(e.finding)))
		}
		if e.finding.Remediation != "" {
			b.WriteString(fmt.Sprintf("- Correção: %s\n", e.finding.Remediation))
		}
		if e.finding.ToolName != "" {
			b.WriteString(fmt.Sprintf("- Ferramenta: %s\n", e.finding.ToolName))
		}
		if e.finding.Evidence != "" {
			b.WriteString("\n```\n")
			b.WriteString(strings.TrimRight(e.finding.Evidence, "\n"))
			b.WriteString("\n```\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatLocation(f *model.Finding) string {
	switch {
	case f.StartLine <= 0:
		return f.FilePath
	case f.EndLine > f.StartLine:
		return fmt.Sprintf("%s:%d-%d", f.FilePath, f.StartLine, f.EndLine)
	default:
		return fmt.Sprintf("%s:%d", f.FilePath, f.StartLine)
	}
}
