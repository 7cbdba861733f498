// File: config.go
// Title: Core Configuration Implementation
// Description: Implements the typed Config, loading from TOML and YAML files,
//              defaults, environment expansion and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed struct, validator tags, FRACALC_CONFIG lookup

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "FRACALC_CONFIG"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Calculator CalculatorConfig `toml:"calculator" yaml:"calculator"`
	History    HistoryConfig    `toml:"history" yaml:"history"`
	TUI        TUIConfig        `toml:"tui" yaml:"tui"`

	path string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn error fatal"`
	LogFormat string `toml:"log_format" yaml:"log_format" validate:"oneof=text json console"`
}

// CalculatorConfig holds evaluation limits
type CalculatorConfig struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length" validate:"gte=1,lte=1048576"`
}

// HistoryConfig holds the calculation history store settings
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path" validate:"required_if=Enabled true"`
	Limit   int    `toml:"limit" yaml:"limit" validate:"gte=1,lte=10000"`
}

// TUIConfig holds terminal UI settings
type TUIConfig struct {
	ShowHistory bool `toml:"show_history" yaml:"show_history"`
	HistoryRows int  `toml:"history_rows" yaml:"history_rows" validate:"gte=1,lte=100"`
}

var validate = validator.New()

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{
		History: HistoryConfig{Enabled: true},
		TUI:     TUIConfig{ShowHistory: true},
	}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Load")
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load")
	}

	cfg, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, path)
	}
	cfg.path = path
	return cfg, nil
}

// LoadFromString parses configuration content in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := &Config{
		History: HistoryConfig{Enabled: true},
		TUI:     TUIConfig{ShowHistory: true},
	}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal([]byte(content), cfg)
	default:
		_, err = toml.Decode(content, cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("format", format.String())
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by FRACALC_CONFIG, or the first file
// found in DefaultPaths. Without either, Default is returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched for a config file
func DefaultPaths() []string {
	paths := []string{
		"./fracalc.toml",
		"./fracalc.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "fracalc", "config.toml"),
			filepath.Join(home, ".config", "fracalc", "config.yaml"),
		)
	}
	return paths
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return mdwerror.Wrap(err, "config validation failed").WithCode(mdwerror.CodeValidationFailed)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return mdwerror.New("invalid configuration: "+strings.Join(msgs, "; ")).
		WithCode(mdwerror.CodeValidationFailed).
		WithDetail("fields", len(verrs))
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	c.General.LogLevel = strings.ToLower(c.General.LogLevel)
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Calculator.MaxInputLength == 0 {
		c.Calculator.MaxInputLength = 4096
	}

	if c.History.Path == "" {
		c.History.Path = "${HOME}/.local/share/fracalc/history.db"
	}
	if c.History.Limit == 0 {
		c.History.Limit = 100
	}

	if c.TUI.HistoryRows == 0 {
		c.TUI.HistoryRows = 8
	}
}

// expandEnvVars expands environment variables in path settings
func (c *Config) expandEnvVars() {
	c.History.Path = os.ExpandEnv(c.History.Path)
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
