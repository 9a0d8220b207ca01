package workbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/truthtable/internal/testutil"
	"github.com/leapstack-labs/truthtable/pkg/formula"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

const sample = `
mirrored: false
tables:
  - name: implication
    vars: A, B
    formula: "!A | B"
  - name: majority
    vars: [A, B, C]
    formula: "(A & B) | (A & C) | (B & C)"
    mirrored: true
  - vars: P
  - formula: "A & C"
    vars: A
`

func TestParse(t *testing.T) {
	wb, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, wb.Tables, 4)

	assert.Equal(t, "implication", wb.Tables[0].Name)
	assert.Equal(t, VarList("A, B"), wb.Tables[0].Vars)
	assert.Equal(t, VarList("A,B,C"), wb.Tables[1].Vars)
	require.NotNil(t, wb.Tables[1].Mirrored)
	assert.True(t, *wb.Tables[1].Mirrored)
	assert.Nil(t, wb.Tables[0].Mirrored)

	// unnamed entries are numbered by position
	assert.Equal(t, "table-3", wb.Tables[2].Name)
	assert.Equal(t, "table-4", wb.Tables[3].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty document", input: "", wantErr: "no tables"},
		{name: "no tables", input: "tables: []\n", wantErr: "no tables"},
		{name: "unknown key", input: "tables:\n  - vars: A\n    colour: red\n", wantErr: "colour"},
		{name: "vars mapping", input: "tables:\n  - vars: {A: 1}\n", wantErr: "vars must be a string or a list"},
		{name: "duplicate names", input: "tables:\n  - name: x\n    vars: A\n  - name: x\n    vars: B\n", wantErr: `name "x" already used by table 1`},
		{name: "empty entry", input: "tables:\n  - name: nothing\n", wantErr: `table "nothing": needs vars or a formula`},
		{name: "not yaml", input: "tables: [\n", wantErr: "invalid workbook"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	wb, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, wb.Path())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read workbook")
}

func TestRun(t *testing.T) {
	wb, err := Parse([]byte(sample))
	require.NoError(t, err)

	b := truthtable.NewBuilder(truthtable.Config{Logger: testutil.NewTestLogger(t)})
	results := wb.Run(b, false)
	require.Len(t, results, 4)

	impl := results[0]
	require.NoError(t, impl.Err)
	assert.Equal(t, truthtable.Contingent, impl.Table.Summary().Classification())
	assert.False(t, impl.Table.Mirrored)
	assert.NoError(t, impl.Failed())

	maj := results[1]
	require.NoError(t, maj.Err)
	assert.True(t, maj.Table.Mirrored)
	assert.Len(t, maj.Table.Rows, 8)
	assert.Equal(t, uint64(7), maj.Table.Rows[0].Index)

	vars := results[2]
	require.NoError(t, vars.Err)
	assert.False(t, vars.Table.HasFormula())
	assert.Len(t, vars.Table.Rows, 2)

	// C is collected from the formula, so the formula evaluates everywhere
	ac := results[3]
	require.NoError(t, ac.Err)
	assert.Equal(t, truthtable.Variables{"A", "C"}, ac.Table.Variables)
	assert.NoError(t, ac.Failed())
}

func TestRun_MirroredPrecedence(t *testing.T) {
	yes, no := true, false
	wb := &Workbook{Tables: []Entry{
		{Name: "inherit", Vars: "A"},
		{Name: "override", Vars: "A", Mirrored: &no},
	}}
	require.NoError(t, wb.Validate())
	b := truthtable.NewBuilder(truthtable.Config{})

	results := wb.Run(b, true)
	assert.True(t, results[0].Table.Mirrored)
	assert.False(t, results[1].Table.Mirrored)

	wb.Mirrored = &no
	results = wb.Run(b, true)
	assert.False(t, results[0].Table.Mirrored)

	wb.Mirrored = &yes
	results = wb.Run(b, false)
	assert.True(t, results[0].Table.Mirrored)
	assert.False(t, results[1].Table.Mirrored)
}

func TestResult_Failed(t *testing.T) {
	b := truthtable.NewBuilder(truthtable.Config{MaxVariables: 2})
	wb := &Workbook{Tables: []Entry{
		{Name: "bad-token", Vars: "A", Formula: "A & 1"},
		{Name: "too-big", Vars: "A,B,C"},
		{Name: "bad-name", Vars: "A1"},
	}}
	require.NoError(t, wb.Validate())

	results := wb.Run(b, false)

	require.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[0].Failed(), formula.ErrUnknownToken)

	assert.Nil(t, results[1].Table)
	assert.ErrorIs(t, results[1].Failed(), truthtable.ErrTooManyVariables)

	assert.ErrorIs(t, results[2].Failed(), truthtable.ErrInvalidVariable)
}
