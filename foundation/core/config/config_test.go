// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, defaults, environment expansion,
//              validation and config file lookup.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Typed configuration tests

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" || cfg.General.LogFormat != "text" {
		t.Errorf("unexpected general defaults: %+v", cfg.General)
	}
	if cfg.Calculator.MaxInputLength != 4096 {
		t.Errorf("MaxInputLength = %d, want 4096", cfg.Calculator.MaxInputLength)
	}
	if !cfg.History.Enabled || cfg.History.Limit != 100 {
		t.Errorf("unexpected history defaults: %+v", cfg.History)
	}
	if strings.Contains(cfg.History.Path, "${HOME}") {
		t.Errorf("history path was not expanded: %s", cfg.History.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("FRACALC_TEST_DIR", tempDir)

	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "fracalc.toml", `
[general]
log_level = "DEBUG"

[calculator]
max_input_length = 256

[history]
path = "${FRACALC_TEST_DIR}/history.db"
limit = 20
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.General.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want debug", cfg.General.LogLevel)
		}
		if cfg.Calculator.MaxInputLength != 256 {
			t.Errorf("MaxInputLength = %d, want 256", cfg.Calculator.MaxInputLength)
		}
		if cfg.History.Path != filepath.Join(tempDir, "history.db") {
			t.Errorf("History.Path = %q", cfg.History.Path)
		}
		if !cfg.History.Enabled {
			t.Error("History.Enabled should keep its default")
		}
		if cfg.Path() != path {
			t.Errorf("Path() = %q, want %q", cfg.Path(), path)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "fracalc.yml", `
general:
  log_format: json
history:
  enabled: false
tui:
  show_history: false
  history_rows: 3
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.General.LogFormat != "json" {
			t.Errorf("LogFormat = %q, want json", cfg.General.LogFormat)
		}
		if cfg.History.Enabled || cfg.TUI.ShowHistory {
			t.Errorf("booleans not read: %+v %+v", cfg.History, cfg.TUI)
		}
		if cfg.TUI.HistoryRows != 3 {
			t.Errorf("HistoryRows = %d, want 3", cfg.TUI.HistoryRows)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("Load() error = %v, want CodeMissingConfig", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, tempDir, "broken.toml", "[general\nlog_level = ")
		_, err := Load(path)
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Load() error = %v, want CodeInvalidConfig", err)
		}
	})
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown level", "[general]\nlog_level = \"loud\"", "LogLevel"},
		{"unknown format", "[general]\nlog_format = \"xml\"", "LogFormat"},
		{"negative input length", "[calculator]\nmax_input_length = -1", "MaxInputLength"},
		{"history limit too large", "[history]\nlimit = 20000", "Limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, FormatTOML)
			if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
				t.Fatalf("LoadFromString() error = %v, want CodeValidationFailed", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err.Error(), tt.field)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	tempDir := t.TempDir()
	path := writeFile(t, tempDir, "custom.toml", "[calculator]\nmax_input_length = 99\n")

	t.Setenv(EnvConfigPath, path)
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Calculator.MaxInputLength != 99 {
		t.Errorf("MaxInputLength = %d, want 99", cfg.Calculator.MaxInputLength)
	}

	t.Setenv(EnvConfigPath, filepath.Join(tempDir, "missing.toml"))
	if _, err := LoadFromEnv(); err == nil {
		t.Error("LoadFromEnv() should fail for a missing explicit file")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"a.toml":       FormatTOML,
		"a.yaml":       FormatYAML,
		"A.YML":        FormatYAML,
		"no-extension": FormatTOML,
	}
	for path, want := range tests {
		if got := detectFormat(path); got != want {
			t.Errorf("detectFormat(%q) = %v, want %v", path, got, want)
		}
	}
}
