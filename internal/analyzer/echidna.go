package analyzer

import (
	"bytes"
	"fmt"
	"os/exec"
)

// RunEchidna executa o fuzzer `echidna` no primeiro alvo informado
// e retorna a saída textual bruta.
func RunEchidna(paths []string) ([]byte, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("nenhum caminho fornecido para o Echidna")
	}

	cmd := exec.Command("echidna", paths[0], "--format", "text")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil && stdout.Len() == 0 {
		return nil, fmt.Errorf("erro ao executar Echidna: %v\nstderr: %s", err, stderr.String())
	}

	return stdout.Bytes(), nil
}
