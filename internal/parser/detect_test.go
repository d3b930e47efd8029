package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	f, err := os.CreateTemp("", "*.sol")
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.WriteString(content)
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	return f.Name()
}

func TestIsSoliditySource(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"contrato_valido", "// SPDX-License-Identifier: MIT\npragma solidity ^0.8.20;\ncontract Vault {}", true},
		{"sem_pragma", "contract Vault {}", false},
		{"arquivo_vazio", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.content)
			defer os.Remove(path)

			result := IsSoliditySource(path)
			if result != tt.expected {
				t.Errorf("esperado %v, obtido %v", tt.expected, result)
			}
		})
	}
}

func TestDetectSolidityFiles(t *testing.T) {
	dir := t.TempDir()

	contract := "pragma solidity ^0.8.20;\ncontract Token {}"
	if err := os.WriteFile(filepath.Join(dir, "Token.sol"), []byte(contract), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("nada aqui"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "interfaces")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "IToken.sol"), []byte(contract), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := DetectSolidityFiles(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("esperado 2 contratos, obtido %d (%v)", len(files), files)
	}

	files, err = DetectSolidityFiles(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("esperado 1 contrato sem recursão, obtido %d (%v)", len(files), files)
	}
}
