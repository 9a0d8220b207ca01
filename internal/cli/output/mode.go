// Package output renders CLI output for terminals, pipes and machines.
//
// In ModeAuto, output written to a terminal is styled text and anything
// else is Markdown, which reads well in logs and for agents.
package output

import (
	"fmt"
	"strings"
)

// OutputMode selects how results are rendered.
//
//nolint:revive // output.OutputMode reads better at call sites than output.Kind
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeCSV      OutputMode = "csv"
	ModeYAML     OutputMode = "yaml"
)

// Modes lists every accepted mode, for flag completion and validation.
var Modes = []OutputMode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeCSV, ModeYAML}

// Mode converts a user-supplied string to an OutputMode. "md" is accepted
// as an alias for markdown; empty selects ModeAuto.
func Mode(s string) OutputMode {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case "":
		return ModeAuto
	case "md":
		return ModeMarkdown
	default:
		return OutputMode(m)
	}
}

// ParseMode is Mode with validation.
func ParseMode(s string) (OutputMode, error) {
	m := Mode(s)
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (expected one of %s)", s, modeList())
}

func modeList() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// FormatHeader returns a Markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}
