// Package truthtable collects variables, enumerates their assignments and
// builds truth tables for propositional formulas.
//
// The two entry points mirror the request cycle of a front end:
//
//	vars, err := truthtable.CollectVariables("A, B", "A & C")
//	if err != nil {
//	    // ErrEmptyInput, ErrInvalidVariable
//	}
//	tbl, err := truthtable.BuildTable(vars, "A & C", false)
//	if err != nil {
//	    // ErrTooManyVariables
//	}
//
// Formula errors never fail a build: they are recorded per row as CellError.
package truthtable

import (
	"log/slog"
	"strings"

	"github.com/leapstack-labs/truthtable/pkg/formula"
)

// MaxTableVariables is the largest variable count a Builder accepts. Tables
// are held in memory, so this is far below HardMaxVariables.
const MaxTableVariables = 32

// preallocRows bounds the row capacity reserved before the first row exists.
const preallocRows = 1 << 16

// Config configures a Builder.
type Config struct {
	// MaxVariables caps the variable count; <= 0 selects DefaultMaxVariables.
	// Values above MaxTableVariables are clamped to it.
	MaxVariables int
	Logger       *slog.Logger
}

// Builder builds truth tables. It keeps no state between builds and is safe
// for concurrent use.
type Builder struct {
	maxVariables int
	logger       *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(cfg Config) *Builder {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{
		maxVariables: min(EffectiveLimit(cfg.MaxVariables), MaxTableVariables),
		logger:       logger,
	}
}

// MaxVariables returns the enforced variable limit.
func (b *Builder) MaxVariables() int { return b.maxVariables }

// BuildTable builds a table with the default configuration.
func BuildTable(vars Variables, formulaText string, mirrored bool) (*Table, error) {
	return NewBuilder(Config{}).Build(vars, formulaText, mirrored)
}

// Generate collects the variables of list and formulaText and builds their table.
func (b *Builder) Generate(list, formulaText string, mirrored bool) (*Table, error) {
	vars, err := CollectVariables(list, formulaText)
	if err != nil {
		return nil, err
	}
	return b.Build(vars, formulaText, mirrored)
}

// Build enumerates every assignment of vars and, when formulaText is not
// blank, evaluates the formula for each one.
//
// Only structural problems (no variables, too many variables) return an
// error, in which case no table is returned. A formula that cannot be parsed,
// or references a variable outside vars, marks every row's formula cell as
// an error.
func (b *Builder) Build(vars Variables, formulaText string, mirrored bool) (*Table, error) {
	enum, err := Enumerate(vars, mirrored, b.maxVariables)
	if err != nil {
		return nil, err
	}

	hasFormula := strings.TrimSpace(formulaText) != ""
	var (
		f         *formula.Formula
		staticErr error
	)
	if hasFormula {
		f, staticErr = formula.Parse(formulaText)
		if staticErr == nil {
			staticErr = f.Bind(vars)
		}
		if staticErr != nil {
			b.logger.Debug("formula rejected before evaluation",
				"formula", formulaText, "error", staticErr)
		}
	} else {
		formulaText = ""
	}

	b.logger.Debug("building truth table",
		"variables", len(vars), "rows", enum.Len(), "mirrored", mirrored, "formula", formulaText)

	rows := make([]Row, 0, min(enum.Len(), preallocRows))
	for _, a := range enum.All() {
		row := Row{Index: a.Index(), Values: a.Values()}
		switch {
		case !hasFormula:
		case staticErr != nil:
			row.Result = ErrorCell(staticErr)
		default:
			v, err := f.Eval(a)
			if err != nil {
				row.Result = ErrorCell(err)
			} else {
				row.Result = BoolCell(v)
			}
		}
		rows = append(rows, row)
	}

	return &Table{
		Variables: vars,
		Formula:   formulaText,
		Mirrored:  mirrored,
		Rows:      rows,
	}, nil
}
