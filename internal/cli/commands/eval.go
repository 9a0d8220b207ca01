package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/truthtable/internal/cli/output"
	"github.com/leapstack-labs/truthtable/pkg/formula"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

// EvalOutput is the json/yaml form of an evaluation.
type EvalOutput struct {
	Formula    string          `json:"formula" yaml:"formula"`
	Assignment map[string]bool `json:"assignment" yaml:"assignment"`
	Value      bool            `json:"value" yaml:"value"`
	Result     string          `json:"result" yaml:"result"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <formula> [NAME=VALUE...]",
		Short: "Evaluate a formula under one assignment",
		Long: `Evaluate a formula for a single assignment of its variables.

Values may be any form accepted for booleans (1, 0, t, f, true, false) or
the configured true/false markers. Every variable in the formula must be
assigned.`,
		Example: `  truthtable eval "A & !B" A=1 B=0
  truthtable eval "P | Q" P=W Q=F -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], args[1:])
		},
	}
}

func runEval(cmd *cobra.Command, text string, pairs []string) error {
	cmdCtx := NewCommandContext(cmd)
	m := cmdCtx.Markers()

	assignment, err := parseAssignment(pairs, m)
	if err != nil {
		return err
	}

	f, err := formula.Parse(text)
	if err != nil {
		return err
	}
	value, err := f.Eval(formula.MapValuation(assignment))
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("evaluated formula", "formula", f.String(), "value", value)

	out := EvalOutput{
		Formula:    strings.TrimSpace(text),
		Assignment: assignment,
		Value:      value,
		Result:     m.Bool(value),
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return renderJSON(r.Out(), out)
	case output.ModeYAML:
		return renderYAML(r.Out(), out)
	case output.ModeText:
		r.Println(styleBool(r.Styles(), value, out.Result))
	default:
		r.Println(out.Result)
	}
	return nil
}

// parseAssignment parses NAME=VALUE pairs.
func parseAssignment(pairs []string, m truthtable.Markers) (map[string]bool, error) {
	assignment := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q (expected NAME=VALUE)", pair)
		}
		if _, dup := assignment[name]; dup {
			return nil, fmt.Errorf("variable %s assigned more than once", name)
		}
		v, err := parseValue(strings.TrimSpace(raw), m)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		assignment[name] = v
	}
	return assignment, nil
}

func parseValue(raw string, m truthtable.Markers) (bool, error) {
	switch raw {
	case m.True:
		return true, nil
	case m.False:
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid value %q", raw)
	}
	return v, nil
}
