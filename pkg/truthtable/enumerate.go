package truthtable

import (
	"fmt"
	"iter"
)

const (
	// DefaultMaxVariables is the variable limit used when none is configured.
	DefaultMaxVariables = 32

	// HardMaxVariables is the largest supported limit: row indices are
	// uint64 and 2^N must be representable.
	HardMaxVariables = 63
)

// EffectiveLimit returns the limit actually enforced for a configured value:
// DefaultMaxVariables for limit <= 0, HardMaxVariables above it.
func EffectiveLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultMaxVariables
	case limit > HardMaxVariables:
		return HardMaxVariables
	default:
		return limit
	}
}

// Assignment is one row's truth value for every variable. The variable at
// position k of an N-variable list takes bit N-1-k of the row index.
type Assignment struct {
	vars  Variables
	pos   map[string]int
	index uint64
}

// Index returns the binary row index the assignment encodes.
func (a Assignment) Index() uint64 { return a.index }

// Len returns the number of variables.
func (a Assignment) Len() int { return len(a.vars) }

// At returns the value of the k-th variable.
func (a Assignment) At(k int) bool {
	shift := uint(len(a.vars) - 1 - k)
	return a.index>>shift&1 == 1
}

// Value implements formula.Valuation.
func (a Assignment) Value(name string) (bool, bool) {
	k, ok := a.pos[name]
	if !ok {
		return false, false
	}
	return a.At(k), true
}

// Values returns the values in variable order.
func (a Assignment) Values() []bool {
	out := make([]bool, len(a.vars))
	for k := range out {
		out[k] = a.At(k)
	}
	return out
}

// Enumerator produces the 2^N assignments over a variable list, in ascending
// binary order or, when mirrored, descending. It holds no mutable state and
// can be iterated any number of times.
type Enumerator struct {
	vars     Variables
	pos      map[string]int
	rows     uint64
	mirrored bool
}

// Enumerate validates vars against limit and returns an Enumerator.
// A limit <= 0 selects DefaultMaxVariables.
func Enumerate(vars Variables, mirrored bool, limit int) (*Enumerator, error) {
	if len(vars) == 0 {
		return nil, ErrEmptyInput
	}
	limit = EffectiveLimit(limit)
	if len(vars) > limit {
		return nil, &TooManyVariablesError{Count: len(vars), Limit: limit}
	}

	pos := make(map[string]int, len(vars))
	for k, name := range vars {
		if _, dup := pos[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
		}
		pos[name] = k
	}

	return &Enumerator{
		vars:     vars,
		pos:      pos,
		rows:     uint64(1) << len(vars),
		mirrored: mirrored,
	}, nil
}

// Variables returns the variable list.
func (e *Enumerator) Variables() Variables { return e.vars }

// Len returns the number of rows, 2^N.
func (e *Enumerator) Len() uint64 { return e.rows }

// At returns the assignment emitted at position i (0 ≤ i < Len()).
func (e *Enumerator) At(i uint64) Assignment {
	index := i
	if e.mirrored {
		index = e.rows - 1 - i
	}
	return Assignment{vars: e.vars, pos: e.pos, index: index}
}

// All yields (position, assignment) pairs in emission order.
func (e *Enumerator) All() iter.Seq2[uint64, Assignment] {
	return func(yield func(uint64, Assignment) bool) {
		for i := uint64(0); i < e.rows; i++ {
			if !yield(i, e.At(i)) {
				return
			}
		}
	}
}
