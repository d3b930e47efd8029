package model

import "fmt"

// ParseError indica definição de checklist malformada. Fatal: aborta o load.
type ParseError struct {
	Category string // categoria ofensora, se conhecida
	ItemID   string // item ofensor, se conhecido
	Reason   string
}

func (e *ParseError) Error() string {
	switch {
	case e.ItemID != "":
		return fmt.Sprintf("definição inválida (item '%s', categoria '%s'): %s", e.ItemID, e.Category, e.Reason)
	case e.Category != "":
		return fmt.Sprintf("definição inválida (categoria '%s'): %s", e.Category, e.Reason)
	default:
		return fmt.Sprintf("definição inválida: %s", e.Reason)
	}
}

// UnknownItemError indica operação sobre um item inexistente. Recuperável:
// a sessão continua e o estado anterior permanece intacto.
type UnknownItemError struct {
	ItemID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("item '%s' não existe no checklist", e.ItemID)
}

// UnknownCategoryError indica consulta sobre categoria inexistente.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("categoria '%s' não existe no checklist", e.Name)
}

// ValidationError indica valor de entrada inválido (severidade ou status).
// Recuperável: a entrada é rejeitada sem alterar o estado.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("valor '%s' inválido para %s", e.Value, e.Field)
}
