package model

import "strings"

type Status string

const (
	StatusPending Status = "PENDING"
	StatusDone    Status = "DONE"
	StatusNA      Status = "NA"
)

// ParseStatus normaliza o status digitado pelo auditor.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING", "PENDENTE":
		return StatusPending, nil
	case "DONE", "OK", "FEITO":
		return StatusDone, nil
	case "NA", "N/A":
		return StatusNA, nil
	default:
		return "", &ValidationError{Field: "status", Value: s}
	}
}

type Item struct {
	ID          string    `json:"id" yaml:"id"`                   // único em todo o checklist (ex: RE-1)
	Description string    `json:"description" yaml:"description"` // o que verificar
	Status      Status    `json:"status" yaml:"status"`
	Findings    []Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

type Category struct {
	Name  string `json:"name" yaml:"name"` // único dentro do checklist
	Items []Item `json:"items" yaml:"items"`
}

// Checklist é a lista de verificação carregada de uma definição.
// A estrutura (categorias e itens) é fixa após o load; só status e
// findings mudam durante a auditoria.
type Checklist struct {
	Version    string     `json:"version,omitempty" yaml:"version,omitempty"`
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// Item localiza um item pelo id, junto com a categoria dona.
func (c *Checklist) Item(id string) (*Item, *Category, bool) {
	for ci := range c.Categories {
		cat := &c.Categories[ci]
		for ii := range cat.Items {
			if cat.Items[ii].ID == id {
				return &cat.Items[ii], cat, true
			}
		}
	}
	return nil, nil, false
}

// Category localiza uma categoria pelo nome.
func (c *Checklist) Category(name string) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i], true
		}
	}
	return nil, false
}
