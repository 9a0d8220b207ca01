package truthtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectVariables(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		formula string
		want    Variables
	}{
		{"union collapses duplicates", "A,B", "A & C", Variables{"A", "B", "C"}},
		{"formula contributes missing names", "A", "A & B", Variables{"A", "B"}},
		{"list only", "q, p ,r", "", Variables{"p", "q", "r"}},
		{"formula only", "", "(x | y) & !x", Variables{"x", "y"}},
		{"whitespace trimmed", "  A ,\tB\t,  ", "", Variables{"A", "B"}},
		{"empty tokens dropped", ",,A,,", "", Variables{"A"}},
		{"case sensitive", "a,A", "", Variables{"A", "a"}},
		{"multi letter names", "Rain,Wet", "Rain & !Sun", Variables{"Rain", "Sun", "Wet"}},
		{"digits split formula names", "", "ab1cd", Variables{"ab", "cd"}},
		{"operators never part of names", "", "A&B|!C", Variables{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectVariables(tt.list, tt.formula)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectVariables_OrderIndependent(t *testing.T) {
	a, err := CollectVariables("C,A,B", "")
	require.NoError(t, err)
	b, err := CollectVariables("B", "A | C")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCollectVariables_Errors(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		formula string
		want    error
	}{
		{"both empty", "", "", ErrEmptyInput},
		{"only separators and blanks", " , ,", "   ", ErrEmptyInput},
		{"formula without letters", "", "()", ErrEmptyInput},
		{"digit in list entry", "A1", "", ErrInvalidVariable},
		{"space inside list entry", "A B", "", ErrInvalidVariable},
		{"operator in list entry", "A&B", "", ErrInvalidVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectVariables(tt.list, tt.formula)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}
}

func TestExtractVariables(t *testing.T) {
	assert.Equal(t, []string{"A", "b", "A"}, ExtractVariables("A & (b | !A)"))
	assert.Empty(t, ExtractVariables("( ) & | ! 42"))
}

func TestVariables_Index(t *testing.T) {
	vars := NewVariables("c", "a", "b", "a")
	assert.Equal(t, Variables{"a", "b", "c"}, vars)
	assert.Equal(t, 1, vars.Index("b"))
	assert.Equal(t, -1, vars.Index("z"))
	assert.True(t, vars.Contains("c"))
	assert.Equal(t, "a, b, c", vars.String())
}
