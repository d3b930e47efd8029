package tracker

import (
	"github.com/Sena-ops/solcheck/internal/model"
)

// Tracker aplica o progresso da auditoria sobre um Checklist carregado.
// Só muda status e findings; a estrutura de categorias/itens nunca é alterada.
type Tracker struct {
	cl *model.Checklist
}

func New(cl *model.Checklist) *Tracker {
	return &Tracker{cl: cl}
}

func (t *Tracker) Checklist() *model.Checklist {
	return t.cl
}

// SetStatus marca um item. Idempotente: repetir o mesmo status é no-op.
func (t *Tracker) SetStatus(itemID string, st model.Status) error {
	switch st {
	case model.StatusPending, model.StatusDone, model.StatusNA:
	default:
		return &model.ValidationError{Field: "status", Value: string(st)}
	}

	item, _, ok := t.cl.Item(itemID)
	if !ok {
		return &model.UnknownItemError{ItemID: itemID}
	}

	item.Status = st
	return nil
}

// AddFinding anexa um finding ao item. Não muda o status automaticamente:
// o auditor decide quando marcar o item via SetStatus.
func (t *Tracker) AddFinding(itemID string, f model.Finding) error {
	switch f.Severity {
	case model.SevCritical, model.SevHigh, model.SevMedium, model.SevLow, model.SevInfo:
	default:
		return &model.ValidationError{Field: "severity", Value: string(f.Severity)}
	}

	item, _, ok := t.cl.Item(itemID)
	if !ok {
		return &model.UnknownItemError{ItemID: itemID}
	}

	item.Findings = append(item.Findings, f)
	return nil
}

// Completion retorna a fração de itens com status != PENDING.
// category vazio calcula sobre o checklist inteiro. Consulta pura.
func (t *Tracker) Completion(category string) (float64, error) {
	var cats []model.Category
	if category == "" {
		cats = t.cl.Categories
	} else {
		cat, ok := t.cl.Category(category)
		if !ok {
			return 0, &model.UnknownCategoryError{Name: category}
		}
		cats = []model.Category{*cat}
	}

	total := 0
	done := 0
	for _, c := range cats {
		for _, it := range c.Items {
			total++
			if it.Status != model.StatusPending {
				done++
			}
		}
	}
	if total == 0 {
		return 0, nil
	}
	return float64(done) / float64(total), nil
}

// SeverityCounts conta findings por severidade em todo o checklist.
func (t *Tracker) SeverityCounts() map[model.Severity]int {
	counts := map[model.Severity]int{}
	for _, c := range t.cl.Categories {
		for _, it := range c.Items {
			for _, f := range it.Findings {
				counts[f.Severity]++
			}
		}
	}
	return counts
}
