package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/truthtable/pkg/token"
)

func TestLexer_Tokens(t *testing.T) {
	toks := Tokenize("(Rain | !sun) &wet")

	want := []struct {
		typ    token.TokenType
		lit    string
		column int
	}{
		{token.LPAREN, "(", 1},
		{token.IDENT, "Rain", 2},
		{token.OR, "|", 7},
		{token.NOT, "!", 9},
		{token.IDENT, "sun", 10},
		{token.RPAREN, ")", 13},
		{token.AND, "&", 15},
		{token.IDENT, "wet", 16},
		{token.EOF, "", 19},
	}

	require.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w.typ, toks[i].Type, "token %d type", i)
		assert.Equal(t, w.lit, toks[i].Literal, "token %d literal", i)
		assert.Equal(t, w.column, toks[i].Pos.Column, "token %d column", i)
		assert.Equal(t, w.column-1, toks[i].Pos.Offset, "token %d offset", i)
	}
}

func TestLexer_DigitsAreIllegal(t *testing.T) {
	toks := Tokenize("A1")
	require.Len(t, toks, 3)
	assert.Equal(t, token.IDENT, toks[0].Type)
	assert.Equal(t, "A", toks[0].Literal)
	assert.Equal(t, token.ILLEGAL, toks[1].Type)
	assert.Equal(t, "1", toks[1].Literal)
}

func TestLexer_Whitespace(t *testing.T) {
	toks := Tokenize(" \t\r\n ")
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)
}

func TestLexer_EmbeddedNUL(t *testing.T) {
	toks := Tokenize("A\x00B")
	require.Len(t, toks, 4)
	assert.Equal(t, token.ILLEGAL, toks[1].Type)
	assert.Equal(t, token.IDENT, toks[2].Type)
}
