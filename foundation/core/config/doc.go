// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads the fracalc configuration from TOML or
//              YAML files into a typed struct.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed calculator configuration with struct validation

/*
Package config provides configuration loading for fracalc.

The file format is chosen by extension (.toml, .yaml, .yml). Values not set
in the file keep their defaults, ${VAR} references in paths are expanded and
the result is validated with struct tags before it is returned.

	cfg, err := mdwconfig.LoadFromEnv()
	if err != nil {
		return err
	}
	limit := cfg.Calculator.MaxInputLength

LoadFromEnv reads the file named by FRACALC_CONFIG. Without it, the default
locations are searched and, when none exists, the defaults are used as they
are.

Example TOML file:

	[general]
	log_level = "debug"
	log_format = "text"

	[calculator]
	max_input_length = 1024

	[history]
	enabled = true
	path = "${HOME}/.local/share/fracalc/history.db"
	limit = 50

	[tui]
	show_history = true
	history_rows = 8
*/
package config
