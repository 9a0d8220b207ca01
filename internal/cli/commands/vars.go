package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/truthtable/internal/cli/output"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

// VarsOutput is the json/yaml form of a collected variable set.
type VarsOutput struct {
	Variables []string `json:"variables" yaml:"variables"`
	Rows      uint64   `json:"rows" yaml:"rows"`
}

// NewVarsCommand creates the vars command.
func NewVarsCommand() *cobra.Command {
	var list, formulaText string

	cmd := &cobra.Command{
		Use:   "vars [formula]",
		Short: "Show the variables a table would have",
		Long: `Print the sorted, distinct variable set collected from --vars and the
formula, together with the number of rows its truth table would have.`,
		Example: `  truthtable vars "B & A | C"
  truthtable vars --vars X,Y --formula "X | Z"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				formulaText = strings.Join(args, " ")
			}
			return runVars(cmd, list, formulaText)
		},
	}

	cmd.Flags().StringVar(&list, "vars", "", "Comma-separated variable names")
	cmd.Flags().StringVarP(&formulaText, "formula", "f", "", "Formula whose letters are collected")

	return cmd
}

func runVars(cmd *cobra.Command, list, formulaText string) error {
	cmdCtx := NewCommandContext(cmd)

	vars, err := truthtable.CollectVariables(list, formulaText)
	if err != nil {
		return err
	}
	limit := cmdCtx.Builder.MaxVariables()
	if len(vars) > limit {
		return &truthtable.TooManyVariablesError{Count: len(vars), Limit: limit}
	}

	out := VarsOutput{Variables: vars, Rows: uint64(1) << len(vars)}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return renderJSON(r.Out(), out)
	case output.ModeYAML:
		return renderYAML(r.Out(), out)
	case output.ModeText:
		r.Println(r.Styles().Bold.Render(vars.String()))
		r.Println(r.Styles().Muted.Render(rowsLabel(out.Rows)))
	default:
		r.Println(vars.String())
		r.Println(rowsLabel(out.Rows))
	}
	return nil
}

func rowsLabel(n uint64) string {
	if n == 1 {
		return "(1 row)"
	}
	return fmt.Sprintf("(%d rows)", n)
}
