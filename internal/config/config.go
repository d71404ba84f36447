// Package config loads settings for the pac command from an optional file
// and PAC_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"

	"github.com/andreiashu/pac"
)

const configEnv = "PAC"

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config represents the command's configuration structure.
type Config struct {
	// Allowed values: 6 to 9
	Precision int        `fig:"precision" default:"8"`
	LogLevel  slog.Level `fig:"loglevel" default:"0"`
	// Allowed values: text, json
	Output string `fig:"output" default:"text"`
}

// NewFromFile reads the config file at path/file and applies environment overrides.
func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	if _, err := os.Stat(filepath.Join(path, file)); err != nil {
		return conf, fmt.Errorf("failed to read config: %w", err)
	}
	if err := fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}
	return conf, conf.Validate()
}

// New builds the config from defaults and environment only.
func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}
	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Precision < pac.MinPrecision || c.Precision > pac.MaxPrecision {
		return fmt.Errorf("invalid precision: %d (allowed %d to %d)", c.Precision, pac.MinPrecision,
			pac.MaxPrecision)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid output format: %s", c.Output)
	}
	return nil
}
