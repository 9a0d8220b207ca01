package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/truthtable/pkg/formula"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

var corpus = []string{
	"A",
	"!A",
	"A | !A",
	"A & !A",
	"A & B",
	"A | B",
	"!(A & B) | A",
	"(A | B) & !(A | B)",
	"(A | B) & !C",
	"A & (B | !B)",
	"(p | q) & (!p | r) & !(q | r)",
	"!(!a | !b) | !a | !b",
	"x & y & z & !(x & y & z)",
	"(a & b) | (a & !b) | (!a & b) | (!a & !b)",
}

func TestClassify_AgreesWithTruthTable(t *testing.T) {
	for _, text := range corpus {
		t.Run(text, func(t *testing.T) {
			f, err := formula.Parse(text)
			require.NoError(t, err)
			vars := truthtable.NewVariables(f.Variables()...)

			tbl, err := truthtable.BuildTable(vars, text, false)
			require.NoError(t, err)

			res, err := Classify(f, vars)
			require.NoError(t, err)
			assert.Equal(t, tbl.Summary().Classification(), res.Classification)
		})
	}
}

func TestClassify_ModelsAreGenuine(t *testing.T) {
	for _, text := range corpus {
		t.Run(text, func(t *testing.T) {
			f, err := formula.Parse(text)
			require.NoError(t, err)

			res, err := Classify(f, nil)
			require.NoError(t, err)

			if res.Witness != nil {
				v, err := f.Eval(formula.MapValuation(res.Witness))
				require.NoError(t, err)
				assert.True(t, v, "witness %v", res.Witness)
			}
			if res.Counterexample != nil {
				v, err := f.Eval(formula.MapValuation(res.Counterexample))
				require.NoError(t, err)
				assert.False(t, v, "counterexample %v", res.Counterexample)
			}

			switch res.Classification {
			case truthtable.Tautology:
				assert.NotNil(t, res.Witness)
				assert.Nil(t, res.Counterexample)
			case truthtable.Contradiction:
				assert.Nil(t, res.Witness)
				assert.NotNil(t, res.Counterexample)
			default:
				assert.NotNil(t, res.Witness)
				assert.NotNil(t, res.Counterexample)
			}
		})
	}
}

func TestClassify_ExtraVariablesInModel(t *testing.T) {
	f, err := formula.Parse("A")
	require.NoError(t, err)

	res, err := Classify(f, truthtable.Variables{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, truthtable.Contingent, res.Classification)
	assert.Contains(t, res.Witness, "B")
	assert.True(t, res.Witness["A"])
	assert.False(t, res.Counterexample["A"])
}

func TestClassifyText(t *testing.T) {
	res, err := ClassifyText("A | !A")
	require.NoError(t, err)
	assert.Equal(t, truthtable.Tautology, res.Classification)

	_, err = ClassifyText("A |")
	assert.ErrorIs(t, err, formula.ErrMalformedExpression)
}
