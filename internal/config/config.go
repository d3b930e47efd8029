package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = ".solcheck"
	configType = "yaml"
	envPrefix  = "SOLCHECK"
)

// Config concentra as opções do solcheck vindas de arquivo, env e defaults.
type Config struct {
	Definition string         `mapstructure:"definition"` // definição YAML padrão ("" = checklist embutido)
	SessionDir string         `mapstructure:"session_dir"`
	Report     ReportConfig   `mapstructure:"report"`
	Analyzer   AnalyzerConfig `mapstructure:"analyzer"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"` // markdown | json | sarif
	File   string `mapstructure:"file"`   // "" = stdout
}

type AnalyzerConfig struct {
	Default   string `mapstructure:"default"` // slither | mythril | echidna
	Recursive bool   `mapstructure:"recursive"`
}

var validFormats = map[string]bool{"markdown": true, "json": true, "sarif": true}

func (c *Config) Validate() error {
	if !validFormats[c.Report.Format] {
		return fmt.Errorf("report.format '%s' inválido (markdown, json ou sarif)", c.Report.Format)
	}
	if c.SessionDir == "" {
		return errors.New("session_dir não pode ser vazio")
	}
	return nil
}

// LoadConfig carrega a configuração de arquivo, variáveis de ambiente e
// defaults. Arquivo ausente não é erro; valem os defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("definition", "")
	v.SetDefault("session_dir", ".solcheck")
	v.SetDefault("report.format", "markdown")
	v.SetDefault("report.file", "")
	v.SetDefault("analyzer.default", "slither")
	v.SetDefault("analyzer.recursive", true)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("ler configuração: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuração: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validar configuração: %w", err)
	}

	return &cfg, nil
}
