package parser

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IsSoliditySource analisa o conteúdo do arquivo para confirmar que é um
// contrato Solidity (presença de uma diretiva pragma solidity).
func IsSoliditySource(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "pragma solidity") {
			return true
		}
	}

	return false
}

// DetectSolidityFiles coleta os arquivos .sol sob o caminho informado.
// Com recursive=false, só o primeiro nível do diretório é considerado.
func DetectSolidityFiles(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("acessar '%s': %w", root, err)
	}
	if !info.IsDir() {
		if isCandidate(root) && IsSoliditySource(root) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var out []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}
			// node_modules de projetos hardhat traz milhares de contratos de terceiros
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if isCandidate(path) && IsSoliditySource(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func isCandidate(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".sol")
}
