package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sena-ops/solcheck/internal/model"
)

// Dir é o diretório de trabalho da auditoria, criado no CWD.
const Dir = ".solcheck"

const fileName = "session.json"

func Path(dir string) string {
	return filepath.Join(dir, fileName)
}

// Save grava o snapshot do checklist (definição + status + findings).
func Save(dir string, cl *model.Checklist) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("criar dir de sessão: %w", err)
	}

	data, err := json.MarshalIndent(cl, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sessão: %w", err)
	}
	if err := os.WriteFile(Path(dir), data, 0o644); err != nil {
		return fmt.Errorf("escrever sessão: %w", err)
	}
	return nil
}

// Load restaura o snapshot gravado por Save. A estrutura de categorias e
// itens vem inteira do snapshot; nada é mesclado com a definição original.
func Load(dir string) (*model.Checklist, error) {
	b, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("nenhuma sessão em '%s' (rode 'solcheck init' primeiro)", dir)
		}
		return nil, fmt.Errorf("ler sessão: %w", err)
	}

	var cl model.Checklist
	if err := json.Unmarshal(b, &cl); err != nil {
		return nil, fmt.Errorf("sessão corrompida: %w", err)
	}
	if len(cl.Categories) == 0 {
		return nil, fmt.Errorf("sessão corrompida: checklist vazio")
	}
	return &cl, nil
}

// Exists informa se já há sessão gravada no diretório.
func Exists(dir string) bool {
	_, err := os.Stat(Path(dir))
	return err == nil
}
