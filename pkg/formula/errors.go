package formula

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/truthtable/pkg/token"
)

// Sentinel errors. Every error returned by this package matches exactly one
// of them under errors.Is.
var (
	// ErrUnknownVariable is returned when an identifier has no value in the assignment.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrMalformedExpression is returned when the token sequence does not
	// reduce to a single value under the grammar.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrUnknownToken is returned for characters that are not letters,
	// connectives, parentheses or whitespace.
	ErrUnknownToken = errors.New("unknown token")
)

// SyntaxError represents a parse error with position information.
type SyntaxError struct {
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed expression at %s: %s", e.Pos, e.Message)
}

// Unwrap returns ErrMalformedExpression.
func (e *SyntaxError) Unwrap() error { return ErrMalformedExpression }

// TokenError represents a character the lexer does not recognise.
type TokenError struct {
	Pos     token.Position
	Literal string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("unknown token %q at %s", e.Literal, e.Pos)
}

// Unwrap returns ErrUnknownToken.
func (e *TokenError) Unwrap() error { return ErrUnknownToken }

// UnknownVariableError names an identifier that has no binding.
type UnknownVariableError struct {
	Name string
	Pos  token.Position
}

func (e *UnknownVariableError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("unknown variable %q at %s", e.Name, e.Pos)
	}
	return fmt.Sprintf("unknown variable %q", e.Name)
}

// Unwrap returns ErrUnknownVariable.
func (e *UnknownVariableError) Unwrap() error { return ErrUnknownVariable }

// Common error messages
const (
	errUnexpectedToken     = "unexpected %s, expected %s"
	errMissingOperand      = "operator %s is missing its %s operand"
	errMissingUnaryOperand = "operator %s is missing its operand"
	errUnbalanced          = "unbalanced %s"
	errEmptyParens         = "empty parentheses"
	errUnclosedParen       = "unclosed parenthesis opened at %s"
	errEmptyFormula        = "empty formula"
)
