package formula

import (
	"strings"

	"github.com/leapstack-labs/truthtable/pkg/token"
)

// Expr is a node of a parsed formula.
type Expr interface {
	// Pos returns the position of the first token of the node.
	Pos() token.Position
	// String returns the canonical, fully parenthesised form.
	String() string
	exprNode()
}

// Ident is a variable reference.
type Ident struct {
	Name    string
	NamePos token.Position
}

// Not is logical negation.
type Not struct {
	OpPos token.Position
	X     Expr
}

// Binary is a conjunction or disjunction. Op is token.AND or token.OR.
type Binary struct {
	Op    token.TokenType
	OpPos token.Position
	Left  Expr
	Right Expr
}

func (e *Ident) Pos() token.Position  { return e.NamePos }
func (e *Not) Pos() token.Position    { return e.OpPos }
func (e *Binary) Pos() token.Position { return e.Left.Pos() }

func (*Ident) exprNode()  {}
func (*Not) exprNode()    {}
func (*Binary) exprNode() {}

func (e *Ident) String() string { return e.Name }
func (e *Not) String() string   { return "!" + e.X.String() }

func (e *Binary) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(e.Left.String())
	sb.WriteByte(' ')
	sb.WriteString(e.Op.String())
	sb.WriteByte(' ')
	sb.WriteString(e.Right.String())
	sb.WriteByte(')')
	return sb.String()
}

// Walk calls fn for every node of the tree rooted at e in depth-first,
// left-to-right order.
func Walk(e Expr, fn func(Expr)) {
	fn(e)
	switch n := e.(type) {
	case *Not:
		Walk(n.X, fn)
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	}
}
