package analyzer

import (
	"fmt"
	"os/exec"
)

// RunSlither executa `slither` no alvo indicado e retorna a saída textual bruta.
// Slither sai com código != 0 quando encontra findings; isso não é erro para nós.
func RunSlither(targetPath string) ([]byte, error) {
	cmd := exec.Command("slither", targetPath)

	out, err := cmd.CombinedOutput()
	if err != nil && len(out) == 0 {
		return nil, fmt.Errorf("erro ao executar Slither: %w", err)
	}

	return out, nil
}
