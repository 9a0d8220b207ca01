// Package formula parses and evaluates propositional formulas.
//
// # Grammar
//
// Formulas use three connectives and parentheses, from lowest to highest
// binding:
//
//	or   → and ('|' and)*
//	and  → not ('&' not)*
//	not  → '!' not | atom
//	atom → IDENT | '(' or ')'
//
// Identifiers are maximal runs of ASCII letters. Chains of the same
// connective associate to the left.
//
// # Usage
//
//	f, err := formula.Parse("(A | B) & !C")
//	if err != nil {
//	    // errors.Is(err, formula.ErrMalformedExpression) etc.
//	}
//	v, err := f.Eval(formula.MapValuation{"A": false, "B": true, "C": false})
package formula

import (
	"fmt"

	"github.com/leapstack-labs/truthtable/pkg/token"
)

// Parser parses a formula into an AST using precedence climbing.
type Parser struct {
	lexer *Lexer
	token token.Token // current token
	err   error       // first error encountered
}

// NewParser creates a new parser for the given formula text.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.nextToken()
	return p
}

// Parse parses text into a Formula.
func Parse(text string) (*Formula, error) {
	p := NewParser(text)
	root := p.parseFormula()
	if p.err != nil {
		return nil, p.err
	}
	return &Formula{source: text, root: root}, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token. Illegal characters are reported as
// soon as they are read, ahead of any grammar error further right.
func (p *Parser) nextToken() {
	p.token = p.lexer.NextToken()
	if p.token.Type == token.ILLEGAL {
		p.fail(&TokenError{Pos: p.token.Pos, Literal: p.token.Literal})
	}
}

func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Parser) syntaxError(pos token.Position, format string, args ...any) {
	p.fail(&SyntaxError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// ---------- Grammar ----------

func (p *Parser) parseFormula() Expr {
	if p.token.Type == token.EOF {
		p.syntaxError(p.token.Pos, errEmptyFormula)
		return nil
	}

	expr := p.parseExpression(1)
	if p.err != nil {
		return nil
	}

	if p.token.Type != token.EOF {
		if p.token.Type == token.RPAREN {
			p.syntaxError(p.token.Pos, errUnbalanced, p.token)
		} else {
			p.syntaxError(p.token.Pos, errUnexpectedToken, p.token, "an operator or end of input")
		}
		return nil
	}
	return expr
}

// parseExpression parses infix chains whose operators bind at least as
// tightly as minPrecedence.
func (p *Parser) parseExpression(minPrecedence int) Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	for {
		prec := token.Precedence(p.token.Type)
		if prec == 0 || prec < minPrecedence {
			return left
		}

		op := p.token
		p.nextToken()
		if p.err != nil {
			return nil
		}
		if p.token.Type == token.EOF {
			p.syntaxError(op.Pos, errMissingOperand, op.Type, "right")
			return nil
		}

		// prec+1 makes chains of the same connective left-associative.
		right := p.parseExpression(prec + 1)
		if right == nil {
			return nil
		}
		left = &Binary{Op: op.Type, OpPos: op.Pos, Left: left, Right: right}
	}
}

// parseUnary parses '!' not | atom.
func (p *Parser) parseUnary() Expr {
	if p.err != nil {
		return nil
	}
	if p.token.Type != token.NOT {
		return p.parseAtom()
	}

	op := p.token
	p.nextToken()
	if p.err != nil {
		return nil
	}
	if p.token.Type == token.EOF {
		p.syntaxError(op.Pos, errMissingUnaryOperand, op.Type)
		return nil
	}
	x := p.parseUnary()
	if x == nil {
		return nil
	}
	return &Not{OpPos: op.Pos, X: x}
}

// parseAtom parses IDENT | '(' or ')'.
func (p *Parser) parseAtom() Expr {
	switch p.token.Type {
	case token.IDENT:
		id := &Ident{Name: p.token.Literal, NamePos: p.token.Pos}
		p.nextToken()
		return id

	case token.LPAREN:
		open := p.token
		p.nextToken()
		if p.err != nil {
			return nil
		}
		if p.token.Type == token.RPAREN {
			p.syntaxError(p.token.Pos, errEmptyParens)
			return nil
		}
		if p.token.Type == token.EOF {
			p.syntaxError(open.Pos, errUnclosedParen, open.Pos)
			return nil
		}
		expr := p.parseExpression(1)
		if expr == nil {
			return nil
		}
		if p.token.Type != token.RPAREN {
			if p.token.Type == token.EOF {
				p.syntaxError(open.Pos, errUnclosedParen, open.Pos)
			} else {
				p.syntaxError(p.token.Pos, errUnexpectedToken, p.token, `")"`)
			}
			return nil
		}
		p.nextToken()
		return expr

	case token.AND, token.OR:
		p.syntaxError(p.token.Pos, errMissingOperand, p.token.Type, "left")
		return nil

	default:
		p.syntaxError(p.token.Pos, errUnexpectedToken, p.token, "a variable, \"!\" or \"(\"")
		return nil
	}
}
