package analyzer

import (
	"fmt"
	"path/filepath"
)

type AnalyzerFunc func(paths []string) ([]byte, error)

var analyzers = map[string]AnalyzerFunc{
	"slither": func(paths []string) ([]byte, error) {
		if len(paths) == 0 {
			return nil, fmt.Errorf("nenhum path informado para slither")
		}
		return RunSlither(paths[0])
	},
	"mythril": RunMythril,
	"echidna": RunEchidna,
}

// Names lista os analisadores suportados.
func Names() []string {
	return []string{"echidna", "mythril", "slither"}
}

// OutputPath é onde a saída bruta (texto puro) de cada ferramenta é salva.
func OutputPath(outDir, analyzerName string) string {
	return filepath.Join(outDir, analyzerName+"-output.txt")
}

// Execute roda o analisador pelo nome e devolve a saída bruta junto com o
// caminho onde ela deve ser salva. A saída é capturada como texto puro:
// nenhum formato específico de ferramenta é interpretado.
func Execute(outDir, analyzerName string, paths []string) ([]byte, string, error) {
	fn, ok := analyzers[analyzerName]
	if !ok {
		return nil, "", fmt.Errorf("analisador '%s' não suportado", analyzerName)
	}

	output, err := fn(paths)
	if err != nil {
		return nil, "", err
	}

	return output, OutputPath(outDir, analyzerName), nil
}
