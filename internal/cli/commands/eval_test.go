package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/truthtable/pkg/formula"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "and", args: []string{"A & B", "A=1", "B=1"}, want: "W"},
		{name: "not binds tighter", args: []string{"!A & B", "A=true", "B=t"}, want: "F"},
		{name: "and before or", args: []string{"A | B & C", "A=1", "B=0", "C=0"}, want: "W"},
		{name: "markers as values", args: []string{"P | Q", "P=F", "Q=W"}, want: "W"},
		{name: "extra assignments ignored", args: []string{"A", "A=0", "Z=1"}, want: "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, "markdown", NewEvalCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestEvalCommand_JSON(t *testing.T) {
	out, _, err := executeCommand(t, "json", NewEvalCommand(), " A & !B ", "A=1", "B=0")
	require.NoError(t, err)

	got := decodeJSON[EvalOutput](t, out)
	assert.Equal(t, "A & !B", got.Formula)
	assert.Equal(t, map[string]bool{"A": true, "B": false}, got.Assignment)
	assert.True(t, got.Value)
	assert.Equal(t, "W", got.Result)
}

func TestEvalCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIs  error
		wantMsg string
	}{
		{name: "unassigned variable", args: []string{"A & B", "A=1"}, wantIs: formula.ErrUnknownVariable},
		{name: "bad token", args: []string{"A + B", "A=1", "B=1"}, wantIs: formula.ErrUnknownToken},
		{name: "malformed", args: []string{"A & ", "A=1"}, wantIs: formula.ErrMalformedExpression},
		{name: "missing equals", args: []string{"A", "A"}, wantMsg: "expected NAME=VALUE"},
		{name: "bad value", args: []string{"A", "A=maybe"}, wantMsg: `invalid value "maybe"`},
		{name: "assigned twice", args: []string{"A", "A=1", "A=0"}, wantMsg: "assigned more than once"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, "markdown", NewEvalCommand(), tt.args...)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	m := truthtable.Markers{True: "yes", False: "no", Error: "?"}

	for raw, want := range map[string]bool{"yes": true, "no": false, "1": true, "FALSE": false, "T": true} {
		got, err := parseValue(raw, m)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := parseValue("?", m)
	assert.Error(t, err)
}
