package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// TableOptions holds options for the table command.
type TableOptions struct {
	Vars    string
	Formula string
	Mirror  bool
	Summary bool
	Strict  bool
}

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	opts := &TableOptions{}

	cmd := &cobra.Command{
		Use:   "table [formula]",
		Short: "Generate a truth table",
		Long: `Generate the truth table for a set of variables and an optional formula.

Columns are the union of the variables given with --vars and the letters
of the formula, in lexicographic order. Each row is one assignment; the last
column holds the formula's value, or the error marker when the formula cannot
be evaluated.

Formulas use & (and), | (or), ! (not) and parentheses. ! binds tightest,
then &, then |.`,
		Example: `  # Table for a formula
  truthtable table "A & (B | !C)"

  # Extra variables and reversed row order
  truthtable table --vars A,B,D --formula "A | B" --mirror

  # Variables only
  truthtable table --vars P,Q,R

  # Machine-readable output with a classification
  truthtable table "A | !A" --summary -o json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if cmd.Flags().Changed("formula") {
					return errors.New("formula given both as argument and with --formula")
				}
				opts.Formula = strings.Join(args, " ")
			}
			return runTable(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Vars, "vars", "", "Comma-separated variable names")
	cmd.Flags().StringVarP(&opts.Formula, "formula", "f", "", "Formula to evaluate")
	cmd.Flags().BoolVarP(&opts.Mirror, "mirror", "m", false, "Reverse the row order (default from config: mirrored)")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "Print the formula's classification")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit non-zero if the formula cannot be evaluated")

	return cmd
}

func runTable(cmd *cobra.Command, opts *TableOptions) error {
	cmdCtx := NewCommandContext(cmd)

	mirrored := cmdCtx.Cfg.Mirrored
	if cmd.Flags().Changed("mirror") {
		mirrored = opts.Mirror
	}

	tbl, err := cmdCtx.Builder.Generate(opts.Vars, opts.Formula, mirrored)
	if err != nil {
		return err
	}

	if err := renderTruthTable(cmdCtx.Renderer, tbl, cmdCtx.Markers(), opts.Summary); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if opts.Strict {
		if err := tbl.FirstError(); err != nil {
			return fmt.Errorf("formula %q: %w", strings.TrimSpace(tbl.Formula), err)
		}
	}
	return nil
}
