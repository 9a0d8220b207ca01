// Package sat classifies formulas with the gini SAT solver.
//
// The formula AST is translated into an and-inverter circuit (gini/logic),
// converted to CNF, and the solver is asked twice: once assuming the root
// (satisfiable?) and once assuming its negation (falsifiable?). This gives
// the same classification as a full truth table without enumerating 2^N rows.
package sat

import (
	"errors"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/leapstack-labs/truthtable/pkg/formula"
	"github.com/leapstack-labs/truthtable/pkg/token"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// ErrIncomplete is returned if the solver gives up without an answer.
var ErrIncomplete = errors.New("solver returned no answer")

// Result is the outcome of Classify.
type Result struct {
	Classification truthtable.Classification
	// Witness satisfies the formula; nil for contradictions.
	Witness map[string]bool
	// Counterexample falsifies the formula; nil for tautologies.
	Counterexample map[string]bool
}

// litMapping translates between variable names and circuit literals.
type litMapping struct {
	c    *logic.C
	lits map[string]z.Lit
	vars truthtable.Variables
}

func newLitMapping(vars truthtable.Variables) *litMapping {
	m := &litMapping{
		c:    logic.NewCCap(len(vars)),
		lits: make(map[string]z.Lit, len(vars)),
		vars: vars,
	}
	for _, name := range vars {
		m.lits[name] = m.c.Lit()
	}
	return m
}

// build returns the literal computing e.
func (m *litMapping) build(e formula.Expr) (z.Lit, error) {
	switch n := e.(type) {
	case *formula.Ident:
		lit, ok := m.lits[n.Name]
		if !ok {
			return z.LitNull, &formula.UnknownVariableError{Name: n.Name, Pos: n.NamePos}
		}
		return lit, nil

	case *formula.Not:
		x, err := m.build(n.X)
		if err != nil {
			return z.LitNull, err
		}
		return x.Not(), nil

	case *formula.Binary:
		l, err := m.build(n.Left)
		if err != nil {
			return z.LitNull, err
		}
		r, err := m.build(n.Right)
		if err != nil {
			return z.LitNull, err
		}
		if n.Op == token.AND {
			return m.c.And(l, r), nil
		}
		return m.c.Or(l, r), nil

	default:
		return z.LitNull, fmt.Errorf("unsupported formula node %T", e)
	}
}

// touch adds the trivial clause (v | !v) for every variable so the solver
// knows all of them, including those the circuit simplified away.
func (m *litMapping) touch(g *gini.Gini) {
	for _, name := range m.vars {
		lit := m.lits[name]
		g.Add(lit)
		g.Add(lit.Not())
		g.Add(z.LitNull)
	}
}

// zero returns the all-false assignment.
func (m *litMapping) zero() map[string]bool {
	out := make(map[string]bool, len(m.vars))
	for _, name := range m.vars {
		out[name] = false
	}
	return out
}

// model reads the value of every variable from a satisfied solver.
func (m *litMapping) model(g *gini.Gini) map[string]bool {
	out := make(map[string]bool, len(m.vars))
	for _, name := range m.vars {
		out[name] = g.Value(m.lits[name])
	}
	return out
}

// Classify decides whether f is a tautology, a contradiction or contingent.
// Variables of f are added to vars when missing so that every variable of
// the formula appears in the witness and counterexample.
func Classify(f *formula.Formula, vars truthtable.Variables) (*Result, error) {
	all := truthtable.NewVariables(append(append([]string{}, vars...), f.Variables()...)...)
	m := newLitMapping(all)

	root, err := m.build(f.Root())
	if err != nil {
		return nil, err
	}

	// Constant roots are folded by the circuit; no search needed.
	switch root {
	case m.c.T:
		return &Result{Classification: truthtable.Tautology, Witness: m.zero()}, nil
	case m.c.F:
		return &Result{Classification: truthtable.Contradiction, Counterexample: m.zero()}, nil
	}

	g := gini.New()
	m.c.ToCnf(g)
	m.touch(g)

	var res Result
	res.Witness, err = solveUnder(g, m, root)
	if err != nil {
		return nil, err
	}
	res.Counterexample, err = solveUnder(g, m, root.Not())
	if err != nil {
		return nil, err
	}

	switch {
	case res.Witness == nil:
		res.Classification = truthtable.Contradiction
	case res.Counterexample == nil:
		res.Classification = truthtable.Tautology
	default:
		res.Classification = truthtable.Contingent
	}
	return &res, nil
}

// solveUnder returns a model with lit true, or nil if there is none.
func solveUnder(g *gini.Gini, m *litMapping, lit z.Lit) (map[string]bool, error) {
	g.Assume(lit)
	switch g.Solve() {
	case satisfiable:
		return m.model(g), nil
	case unsatisfiable:
		return nil, nil
	default:
		return nil, ErrIncomplete
	}
}

// ClassifyText parses text and classifies it over its own variables.
func ClassifyText(text string) (*Result, error) {
	f, err := formula.Parse(text)
	if err != nil {
		return nil, err
	}
	return Classify(f, nil)
}
