package truthtable

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when neither the variable list nor the
	// formula supplies a variable.
	ErrEmptyInput = errors.New("no variables supplied")

	// ErrTooManyVariables is returned when the variable count exceeds the
	// configured limit.
	ErrTooManyVariables = errors.New("too many variables")

	// ErrInvalidVariable is returned for list entries that are not runs of letters.
	ErrInvalidVariable = errors.New("invalid variable name")

	// ErrDuplicateVariable is returned when an ordered variable list names
	// the same variable twice.
	ErrDuplicateVariable = errors.New("duplicate variable")
)

// TooManyVariablesError reports the rejected count and the limit in force.
type TooManyVariablesError struct {
	Count int
	Limit int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("too many variables: %d exceeds the limit of %d", e.Count, e.Limit)
}

// Unwrap returns ErrTooManyVariables.
func (e *TooManyVariablesError) Unwrap() error { return ErrTooManyVariables }

// InvalidVariableError names a variable list entry that cannot be used.
type InvalidVariableError struct {
	Name string
}

func (e *InvalidVariableError) Error() string {
	return fmt.Sprintf("invalid variable name %q: names must consist of letters only", e.Name)
}

// Unwrap returns ErrInvalidVariable.
func (e *InvalidVariableError) Unwrap() error { return ErrInvalidVariable }
