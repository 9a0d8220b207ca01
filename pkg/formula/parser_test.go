package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// To each formula, associate its canonical form.
var exprToCanonical = map[string]string{
	"foo":                "foo",
	"!foo":               "!foo",
	"!!foo":              "!!foo",
	"(foo)":              "foo",
	"((foo))":            "foo",
	"a | b":              "(a | b)",
	"a & b":              "(a & b)",
	"a | b & c":          "(a | (b & c))",
	"a & b | c":          "((a & b) | c)",
	"(a | b) & c":        "((a | b) & c)",
	"!a | b":             "(!a | b)",
	"!(a | b)":           "!(a | b)",
	"a & b & c":          "((a & b) & c)",
	"a | b | c":          "((a | b) | c)",
	"a & (b & c) & d":    "((a & (b & c)) & d)",
	"!a&!b|c":            "((!a & !b) | c)",
	"(A | B) & !C":       "((A | B) & !C)",
	"  Rain\t|\nSun  ":   "(Rain | Sun)",
	"a | b & !(c | !d)":  "(a | (b & !(c | !d)))",
	"(a|!b|c) & !(a|!b)": "(((a | !b) | c) & !(a | !b))",
}

func TestParse_Canonical(t *testing.T) {
	for expr, expected := range exprToCanonical {
		t.Run(expr, func(t *testing.T) {
			f, err := Parse(expr)
			require.NoError(t, err)
			assert.Equal(t, expected, f.String())
			assert.Equal(t, expr, f.Source())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    error
		column  int
		message string
	}{
		{"empty", "", ErrMalformedExpression, 1, "empty formula"},
		{"blank", "   ", ErrMalformedExpression, 4, "empty formula"},
		{"dangling and", "A &", ErrMalformedExpression, 3, "missing its right operand"},
		{"dangling or", "A | B |", ErrMalformedExpression, 7, "missing its right operand"},
		{"leading and", "& A", ErrMalformedExpression, 1, "missing its left operand"},
		{"double operator", "A & | B", ErrMalformedExpression, 5, "missing its left operand"},
		{"lone not", "!", ErrMalformedExpression, 1, "missing its operand"},
		{"unclosed paren", "(A & B", ErrMalformedExpression, 1, "unclosed parenthesis"},
		{"extra close paren", "A & B)", ErrMalformedExpression, 6, "unbalanced"},
		{"empty parens", "()", ErrMalformedExpression, 2, "empty parentheses"},
		{"adjacent variables", "A B", ErrMalformedExpression, 3, "expected an operator"},
		{"missing operand in parens", "(A & )", ErrMalformedExpression, 6, "unexpected"},
		{"digit", "A & 1", ErrUnknownToken, 5, `"1"`},
		{"xor", "A ^ B", ErrUnknownToken, 3, `"^"`},
		{"implication", "A -> B", ErrUnknownToken, 3, `"-"`},
		{"illegal wins over later syntax error", "A # (", ErrUnknownToken, 3, `"#"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.message)

			var synErr *SyntaxError
			var tokErr *TokenError
			switch {
			case errors.As(err, &synErr):
				assert.Equal(t, tt.column, synErr.Pos.Column)
			case errors.As(err, &tokErr):
				assert.Equal(t, tt.column, tokErr.Pos.Column)
			default:
				t.Fatalf("unexpected error type %T", err)
			}
		})
	}
}

func TestParse_ErrorKindsAreDistinct(t *testing.T) {
	_, err := Parse("A &")
	assert.ErrorIs(t, err, ErrMalformedExpression)
	assert.NotErrorIs(t, err, ErrUnknownToken)
	assert.NotErrorIs(t, err, ErrUnknownVariable)

	_, err = Parse("A $ B")
	assert.ErrorIs(t, err, ErrUnknownToken)
	assert.NotErrorIs(t, err, ErrMalformedExpression)
}
