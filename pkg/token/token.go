// Package token defines the lexical tokens of propositional formulas.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Identifiers
	IDENT // A, foo, Rain

	// Connectives
	NOT // !
	AND // &
	OR  // |

	// Grouping
	LPAREN // (
	RPAREN // )
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",
	IDENT:   "IDENT",
	NOT:     "!",
	AND:     "&",
	OR:      "|",
	LPAREN:  "(",
	RPAREN:  ")",
}

// Precedence returns the binding power of an infix connective.
// Higher binds tighter; non-infix tokens return 0.
func Precedence(t TokenType) int {
	switch t {
	case OR:
		return 1
	case AND:
		return 2
	default:
		return 0
	}
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String formats the token for diagnostics.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Literal)
	default:
		return fmt.Sprintf("%q", t.Literal)
	}
}
