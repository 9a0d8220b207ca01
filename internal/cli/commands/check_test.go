package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/truthtable/pkg/formula"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

func TestCheckCommand_JSON(t *testing.T) {
	tests := []struct {
		formula        string
		want           truthtable.Classification
		witness        bool
		counterexample bool
	}{
		{"A | !A", truthtable.Tautology, true, false},
		{"A & !A", truthtable.Contradiction, false, true},
		{"(A & B) | (!A & !B)", truthtable.Contingent, true, true},
		{"!(A & B) | A", truthtable.Tautology, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			out, _, err := executeCommand(t, "json", NewCheckCommand(), "--verify", tt.formula)
			require.NoError(t, err)

			got := decodeJSON[CheckOutput](t, out)
			assert.Equal(t, tt.want, got.Classification)
			assert.True(t, got.Verified)
			assert.Equal(t, tt.witness, got.Witness != nil)
			assert.Equal(t, tt.counterexample, got.Counterexample != nil)

			f, err := formula.Parse(tt.formula)
			require.NoError(t, err)
			if got.Witness != nil {
				v, err := f.Eval(formula.MapValuation(got.Witness))
				require.NoError(t, err)
				assert.True(t, v, "witness must satisfy the formula")
			}
			if got.Counterexample != nil {
				v, err := f.Eval(formula.MapValuation(got.Counterexample))
				require.NoError(t, err)
				assert.False(t, v, "counterexample must falsify the formula")
			}
		})
	}
}

func TestCheckCommand_ExtraVariables(t *testing.T) {
	out, _, err := executeCommand(t, "json", NewCheckCommand(), "--vars", "Z", "A | !A")
	require.NoError(t, err)

	got := decodeJSON[CheckOutput](t, out)
	assert.Equal(t, []string{"A", "Z"}, got.Variables)
	assert.Contains(t, got.Witness, "Z")
}

func TestCheckCommand_Text(t *testing.T) {
	out, _, err := executeCommand(t, "text", NewCheckCommand(), "A & B")
	require.NoError(t, err)

	assert.Contains(t, out, "Contingent")
	assert.Contains(t, out, "satisfied by:  A=W B=W")
	assert.Contains(t, out, "falsified by:")
}

func TestCheckCommand_Errors(t *testing.T) {
	_, _, err := executeCommand(t, "json", NewCheckCommand(), "A &")
	assert.ErrorIs(t, err, formula.ErrMalformedExpression)

	_, _, err = executeCommand(t, "json", NewCheckCommand(), "--vars", "9", "A")
	assert.ErrorIs(t, err, truthtable.ErrInvalidVariable)

	// the solver handles more variables than the table may enumerate
	t.Setenv("TRUTHTABLE_MAX_VARIABLES", "2")
	out, _, err := executeCommand(t, "json", NewCheckCommand(), "A | B | C")
	require.NoError(t, err)
	assert.Equal(t, truthtable.Contingent, decodeJSON[CheckOutput](t, out).Classification)

	_, _, err = executeCommand(t, "json", NewCheckCommand(), "--verify", "A | B | C")
	assert.ErrorIs(t, err, truthtable.ErrTooManyVariables)
}

func TestFormatAssignment(t *testing.T) {
	m := truthtable.DefaultMarkers
	got := formatAssignment([]string{"B", "A"}, map[string]bool{"A": true, "B": false, "C": true}, m)
	assert.Equal(t, "B=F A=W C=W", got)
}
