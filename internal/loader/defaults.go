package loader

import (
	_ "embed"

	"github.com/Sena-ops/solcheck/internal/model"
)

// Checklist padrão de auditoria Solidity, embutido no binário.
//
//go:embed solidity.yaml
var defaultDefinition []byte

// LoadDefault carrega o checklist Solidity embutido.
func LoadDefault() (*model.Checklist, error) {
	return LoadBytes(defaultDefinition)
}
