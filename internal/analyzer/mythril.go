package analyzer

import (
	"bytes"
	"fmt"
	"os/exec"
)

// RunMythril executa `myth analyze` em cada contrato e concatena as saídas.
func RunMythril(paths []string) ([]byte, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("nenhum caminho fornecido para o Mythril")
	}

	var all bytes.Buffer
	for _, p := range paths {
		cmd := exec.Command("myth", "analyze", p, "-o", "text")

		out, err := cmd.CombinedOutput()
		if err != nil && len(out) == 0 {
			return nil, fmt.Errorf("erro ao executar Mythril em %s: %w", p, err)
		}

		all.WriteString(fmt.Sprintf("==== %s ====\n", p))
		all.Write(out)
		all.WriteString("\n")
	}

	return all.Bytes(), nil
}
