package formula

import (
	"slices"

	"github.com/leapstack-labs/truthtable/pkg/token"
)

// Valuation supplies a truth value for each variable name.
// The second result is false when the name has no binding.
type Valuation interface {
	Value(name string) (bool, bool)
}

// MapValuation is a Valuation backed by a map.
type MapValuation map[string]bool

// Value implements Valuation.
func (m MapValuation) Value(name string) (bool, bool) {
	v, ok := m[name]
	return v, ok
}

// Formula is a parsed, immutable propositional formula.
type Formula struct {
	source string
	root   Expr
}

// Source returns the text the formula was parsed from.
func (f *Formula) Source() string { return f.source }

// Root returns the root node of the AST.
func (f *Formula) Root() Expr { return f.root }

// String returns the canonical, fully parenthesised form.
func (f *Formula) String() string { return f.root.String() }

// Variables returns the distinct identifiers of the formula, sorted.
func (f *Formula) Variables() []string {
	var names []string
	Walk(f.root, func(e Expr) {
		if id, ok := e.(*Ident); ok {
			names = append(names, id.Name)
		}
	})
	slices.Sort(names)
	return slices.Compact(names)
}

// Bind checks that every identifier of the formula is one of vars. The
// returned error reports the leftmost unbound identifier.
func (f *Formula) Bind(vars []string) error {
	known := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		known[v] = struct{}{}
	}
	var err error
	Walk(f.root, func(e Expr) {
		id, ok := e.(*Ident)
		if !ok || err != nil {
			return
		}
		if _, ok := known[id.Name]; !ok {
			err = &UnknownVariableError{Name: id.Name, Pos: id.NamePos}
		}
	})
	return err
}

// Eval evaluates the formula under v. Both operands of a connective are
// always evaluated, left first, so the same unbound variable is reported
// regardless of the values of its neighbours.
func (f *Formula) Eval(v Valuation) (bool, error) {
	return eval(f.root, v)
}

func eval(e Expr, v Valuation) (bool, error) {
	switch n := e.(type) {
	case *Ident:
		b, ok := v.Value(n.Name)
		if !ok {
			return false, &UnknownVariableError{Name: n.Name, Pos: n.NamePos}
		}
		return b, nil

	case *Not:
		x, err := eval(n.X, v)
		if err != nil {
			return false, err
		}
		return !x, nil

	case *Binary:
		l, err := eval(n.Left, v)
		if err != nil {
			return false, err
		}
		r, err := eval(n.Right, v)
		if err != nil {
			return false, err
		}
		if n.Op == token.AND {
			return l && r, nil
		}
		return l || r, nil

	default:
		return false, &SyntaxError{Pos: e.Pos(), Message: "unsupported node"}
	}
}

// Evaluate parses text and evaluates it under v.
func Evaluate(text string, v Valuation) (bool, error) {
	f, err := Parse(text)
	if err != nil {
		return false, err
	}
	return f.Eval(v)
}
