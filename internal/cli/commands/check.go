package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/truthtable/internal/cli/output"
	"github.com/leapstack-labs/truthtable/internal/sat"
	"github.com/leapstack-labs/truthtable/pkg/formula"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Vars   string
	Verify bool
}

// CheckOutput is the json/yaml form of a classification.
type CheckOutput struct {
	Formula        string                    `json:"formula" yaml:"formula"`
	Variables      []string                  `json:"variables" yaml:"variables"`
	Classification truthtable.Classification `json:"classification" yaml:"classification"`
	Witness        map[string]bool           `json:"witness,omitempty" yaml:"witness,omitempty"`
	Counterexample map[string]bool           `json:"counterexample,omitempty" yaml:"counterexample,omitempty"`
	Verified       bool                      `json:"verified,omitempty" yaml:"verified,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <formula>",
		Short: "Classify a formula with a SAT solver",
		Long: `Decide whether a formula is a tautology, a contradiction or contingent
without enumerating its truth table.

A satisfying assignment (witness) and a falsifying one (counterexample) are
printed when they exist. With --verify the full truth table is also built
and the two classifications are compared.`,
		Example: `  truthtable check "A | !A"
  truthtable check "(A & B) | (!A & !B)" --verify
  truthtable check "P & !P" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Vars, "vars", "", "Additional comma-separated variable names")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Cross-check against the full truth table")

	return cmd
}

func runCheck(cmd *cobra.Command, text string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)

	names, err := truthtable.SplitVariableList(opts.Vars)
	if err != nil {
		return err
	}
	f, err := formula.Parse(text)
	if err != nil {
		return err
	}

	vars := truthtable.NewVariables(append(names, f.Variables()...)...)
	res, err := sat.Classify(f, vars)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	cmdCtx.Logger.Debug("classified formula",
		"formula", f.String(), "variables", len(vars), "classification", res.Classification)

	out := CheckOutput{
		Formula:        strings.TrimSpace(text),
		Variables:      vars,
		Classification: res.Classification,
		Witness:        res.Witness,
		Counterexample: res.Counterexample,
	}

	if opts.Verify {
		tbl, err := cmdCtx.Builder.Build(vars, text, false)
		if err != nil {
			return fmt.Errorf("cannot verify: %w", err)
		}
		if got := tbl.Summary().Classification(); got != res.Classification {
			return fmt.Errorf("solver says %s but the truth table says %s", res.Classification, got)
		}
		out.Verified = true
	}

	return renderCheck(cmdCtx.Renderer, out, cmdCtx.Markers())
}

func renderCheck(r *output.Renderer, out CheckOutput, m truthtable.Markers) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return renderJSON(r.Out(), out)
	case output.ModeYAML:
		return renderYAML(r.Out(), out)
	}

	styles := r.Styles()
	label := cases.Title(language.English).String(string(out.Classification))
	if r.EffectiveMode() == output.ModeText {
		label = styles.Bold.Render(label)
	}
	r.Println(label)
	if out.Witness != nil {
		r.Printf("  satisfied by:  %s\n", formatAssignment(out.Variables, out.Witness, m))
	}
	if out.Counterexample != nil {
		r.Printf("  falsified by:  %s\n", formatAssignment(out.Variables, out.Counterexample, m))
	}
	if out.Verified {
		r.Success("  verified against the truth table")
	}
	return nil
}

// formatAssignment renders an assignment as "A=W B=F" in column order.
func formatAssignment(vars []string, a map[string]bool, m truthtable.Markers) string {
	parts := make([]string, 0, len(a))
	for _, name := range vars {
		if v, ok := a[name]; ok {
			parts = append(parts, name+"="+m.Bool(v))
		}
	}
	// names outside vars, if any, follow in sorted order
	var extra []string
	for name := range a {
		if !slices.Contains(vars, name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	for _, name := range extra {
		parts = append(parts, name+"="+m.Bool(a[name]))
	}
	return strings.Join(parts, " ")
}
