package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/solcheck/internal/config"
)

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solcheck.yaml")

	content := `
definition: "meu-checklist.yaml"
session_dir: ".auditoria"
report:
  format: "sarif"
analyzer:
  default: "mythril"
  recursive: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "meu-checklist.yaml", cfg.Definition)
	assert.Equal(t, ".auditoria", cfg.SessionDir)
	assert.Equal(t, "sarif", cfg.Report.Format)
	assert.Equal(t, "mythril", cfg.Analyzer.Default)
	assert.False(t, cfg.Analyzer.Recursive)
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vazio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Definition)
	assert.Equal(t, ".solcheck", cfg.SessionDir)
	assert.Equal(t, "markdown", cfg.Report.Format)
	assert.Equal(t, "slither", cfg.Analyzer.Default)
	assert.True(t, cfg.Analyzer.Recursive)
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  format: pdf\n"), 0o644))

	_, err := config.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestValidate_EmptySessionDir(t *testing.T) {
	cfg := &config.Config{
		SessionDir: "",
		Report:     config.ReportConfig{Format: "markdown"},
	}
	require.Error(t, cfg.Validate())
}
