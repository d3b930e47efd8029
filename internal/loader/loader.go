package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sena-ops/solcheck/internal/model"
)

// Estrutura do YAML de definição (categorias ordenadas -> itens ordenados).
type definition struct {
	Version    string `yaml:"version"`
	Name       string `yaml:"name"`
	Categories []struct {
		Name  string `yaml:"name"`
		Items []struct {
			ID          string `yaml:"id"`
			Description string `yaml:"description"`
		} `yaml:"items"`
	} `yaml:"categories"`
}

// LoadBytes constrói um Checklist a partir de uma definição YAML.
// Todos os itens começam em PENDING. Construção pura: nenhum efeito colateral.
func LoadBytes(b []byte) (*model.Checklist, error) {
	var def definition
	if err := yaml.Unmarshal(b, &def); err != nil {
		return nil, &model.ParseError{Reason: fmt.Sprintf("yaml malformado: %v", err)}
	}

	if len(def.Categories) == 0 {
		return nil, &model.ParseError{Reason: "definição sem categorias"}
	}

	seenCat := make(map[string]bool, len(def.Categories))
	seenID := make(map[string]string, 32) // id -> categoria onde apareceu

	cl := &model.Checklist{
		Version:    def.Version,
		Name:       def.Name,
		Categories: make([]model.Category, 0, len(def.Categories)),
	}

	for _, c := range def.Categories {
		if c.Name == "" {
			return nil, &model.ParseError{Reason: "categoria sem nome"}
		}
		if seenCat[c.Name] {
			return nil, &model.ParseError{Category: c.Name, Reason: "categoria duplicada"}
		}
		seenCat[c.Name] = true

		if len(c.Items) == 0 {
			return nil, &model.ParseError{Category: c.Name, Reason: "categoria sem itens"}
		}

		cat := model.Category{Name: c.Name, Items: make([]model.Item, 0, len(c.Items))}
		for _, it := range c.Items {
			if it.ID == "" {
				return nil, &model.ParseError{Category: c.Name, Reason: "item sem id"}
			}
			if other, dup := seenID[it.ID]; dup {
				return nil, &model.ParseError{
					Category: c.Name,
					ItemID:   it.ID,
					Reason:   fmt.Sprintf("id duplicado (já usado na categoria '%s')", other),
				}
			}
			seenID[it.ID] = c.Name

			cat.Items = append(cat.Items, model.Item{
				ID:          it.ID,
				Description: it.Description,
				Status:      model.StatusPending,
			})
		}
		cl.Categories = append(cl.Categories, cat)
	}

	return cl, nil
}

// LoadFile lê a definição de um arquivo YAML.
func LoadFile(path string) (*model.Checklist, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ler definição: %w", err)
	}
	return LoadBytes(b)
}
