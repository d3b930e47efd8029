package report

import (
	"encoding/json"
	"fmt"

	"github.com/Sena-ops/solcheck/internal/model"
)

type jsonFinding struct {
	ItemID   string `json:"item_id"`
	Category string `json:"category"`
	model.Finding
}

type jsonReport struct {
	Name       string                 `json:"name,omitempty"`
	Version    string                 `json:"version,omitempty"`
	Completion float64                `json:"completion"`
	Summary    map[model.Severity]int `json:"summary"`
	Findings   []jsonFinding          `json:"findings"`
}

// RenderJSON serializa o relatório em JSON, com a mesma ordenação do markdown.
func RenderJSON(cl *model.Checklist) ([]byte, error) {
	entries := collect(cl)
	sortEntries(entries)

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

	rep := jsonReport{
		Name:     cl.Name,
		Version:  cl.Version,
		Summary:  counts,
		Findings: make([]jsonFinding, 0, len(entries)),
	}
	if total > 0 {
		rep.Completion = float64(done) / float64(total)
	}
	for _, e := range entries {
		rep.Findings = append(rep.Findings, jsonFinding{
			ItemID:   e.item.ID,
			Category: e.cat.Name,
			Finding:  *e.finding,
		})
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal relatório: %w", err)
	}
	return data, nil
}
