// Package config provides configuration management for the truthtable CLI.
//
// Values are layered, highest priority first: explicitly set flags,
// TRUTHTABLE_* environment variables, the config file (truthtable.yaml),
// then built-in defaults.
package config

import (
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

// Markers is an alias for the table markers so CLI code need not import
// pkg/truthtable just to name the type.
type Markers = truthtable.Markers

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string  `koanf:"output"`
	Verbose      bool    `koanf:"verbose"`
	MaxVariables int     `koanf:"max_variables"`
	Mirrored     bool    `koanf:"mirrored"`
	Markers      Markers `koanf:"markers"`
	HistoryFile  string  `koanf:"history_file"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown

	// DefaultMaxVariables keeps interactive generation fast: 2^16 rows.
	// The library itself accepts up to truthtable.DefaultMaxVariables.
	DefaultMaxVariables = 16
)

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		MaxVariables: DefaultMaxVariables,
		Markers:      truthtable.DefaultMarkers,
	}
}
