package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/solcheck/internal/loader"
	"github.com/Sena-ops/solcheck/internal/model"
)

const validDef = `
version: "1.0"
name: "Auditoria Teste"
categories:
  - name: "Reentrancy"
    items:
      - id: RE-1
        description: "checks-effects-interactions"
      - id: RE-2
        description: "guarda nonReentrant"
  - name: "Access Control"
    items:
      - id: AC-1
        description: "onlyOwner nas funções administrativas"
`

func TestLoadBytes_Valid(t *testing.T) {
	t.Parallel()

	cl, err := loader.LoadBytes([]byte(validDef))
	require.NoError(t, err)

	assert.Equal(t, "Auditoria Teste", cl.Name)
	require.Len(t, cl.Categories, 2)
	assert.Equal(t, "Reentrancy", cl.Categories[0].Name)
	require.Len(t, cl.Categories[0].Items, 2)

	// todos os itens nascem pendentes
	for _, cat := range cl.Categories {
		for _, it := range cat.Items {
			assert.Equal(t, model.StatusPending, it.Status)
			assert.Empty(t, it.Findings)
		}
	}
}

func TestLoadBytes_DuplicateIDAcrossCategories(t *testing.T) {
	t.Parallel()

	def := `
categories:
  - name: "Reentrancy"
    items:
      - id: X-1
        description: "a"
  - name: "Access Control"
    items:
      - id: X-1
        description: "b"
`
	_, err := loader.LoadBytes([]byte(def))
	require.Error(t, err)

	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "X-1", perr.ItemID)
	assert.Equal(t, "Access Control", perr.Category)
}

func TestLoadBytes_EmptyCategory(t *testing.T) {
	t.Parallel()

	def := `
categories:
  - name: "Reentrancy"
    items:
      - id: RE-1
        description: "a"
  - name: "Vazia"
    items: []
`
	_, err := loader.LoadBytes([]byte(def))
	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Vazia", perr.Category)
}

func TestLoadBytes_Malformed(t *testing.T) {
	t.Parallel()

	_, err := loader.LoadBytes([]byte("categories: [\"quebrado"))
	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestLoadBytes_NoCategories(t *testing.T) {
	t.Parallel()

	_, err := loader.LoadBytes([]byte("version: \"1.0\"\n"))
	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestLoadDefault(t *testing.T) {
	t.Parallel()

	cl, err := loader.LoadDefault()
	require.NoError(t, err)
	assert.NotEmpty(t, cl.Categories)

	seen := map[string]bool{}
	for _, cat := range cl.Categories {
		assert.NotEmpty(t, cat.Items, "categoria %s sem itens", cat.Name)
		for _, it := range cat.Items {
			assert.False(t, seen[it.ID], "id duplicado no checklist embutido: %s", it.ID)
			seen[it.ID] = true
		}
	}
}
