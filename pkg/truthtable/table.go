package truthtable

import (
	"slices"
	"strings"
)

// CellKind classifies a formula cell.
type CellKind int

// Cell kinds.
const (
	CellNone  CellKind = iota // no formula supplied
	CellFalse                 // formula evaluated to false
	CellTrue                  // formula evaluated to true
	CellError                 // evaluation failed
)

// String returns the lowercase kind name.
func (k CellKind) String() string {
	switch k {
	case CellFalse:
		return "false"
	case CellTrue:
		return "true"
	case CellError:
		return "error"
	default:
		return "none"
	}
}

// Cell is the formula column of one row.
type Cell struct {
	Kind CellKind
	Err  error // set when Kind == CellError
}

// BoolCell returns the cell for a successfully evaluated value.
func BoolCell(v bool) Cell {
	if v {
		return Cell{Kind: CellTrue}
	}
	return Cell{Kind: CellFalse}
}

// ErrorCell returns the cell for a failed evaluation.
func ErrorCell(err error) Cell {
	return Cell{Kind: CellError, Err: err}
}

// Render returns the marker for the cell.
func (c Cell) Render(m Markers) string {
	switch c.Kind {
	case CellTrue:
		return m.True
	case CellFalse:
		return m.False
	case CellError:
		return m.Error
	default:
		return ""
	}
}

// Markers are the strings cells are rendered with.
type Markers struct {
	True  string `json:"true" yaml:"true" koanf:"true"`
	False string `json:"false" yaml:"false" koanf:"false"`
	Error string `json:"error" yaml:"error" koanf:"error"`
}

// DefaultMarkers renders true as "W", false as "F" and failures as "Error".
var DefaultMarkers = Markers{True: "W", False: "F", Error: "Error"}

// Bool returns the marker for v.
func (m Markers) Bool(v bool) string {
	if v {
		return m.True
	}
	return m.False
}

// WithDefaults fills empty markers from DefaultMarkers.
func (m Markers) WithDefaults() Markers {
	if m.True == "" {
		m.True = DefaultMarkers.True
	}
	if m.False == "" {
		m.False = DefaultMarkers.False
	}
	if m.Error == "" {
		m.Error = DefaultMarkers.Error
	}
	return m
}

// Row is one assignment and, when a formula was supplied, its value.
type Row struct {
	Index  uint64 // binary row index the assignment encodes
	Values []bool // one per variable, in column order
	Result Cell
}

// Table is a complete truth table. It is built in full by a Builder and
// never modified afterwards.
type Table struct {
	Variables Variables
	Formula   string // source text; empty when no formula was supplied
	Mirrored  bool
	Rows      []Row
}

// HasFormula reports whether the table carries a formula column.
func (t *Table) HasFormula() bool {
	return t.Formula != ""
}

// Columns returns the column count: one per variable plus the formula column.
func (t *Table) Columns() int {
	if t.HasFormula() {
		return len(t.Variables) + 1
	}
	return len(t.Variables)
}

// Header returns the column titles.
func (t *Table) Header() []string {
	header := slices.Clone([]string(t.Variables))
	if t.HasFormula() {
		header = append(header, strings.TrimSpace(t.Formula))
	}
	return header
}

// Records renders every row with m.
func (t *Table) Records(m Markers) [][]string {
	records := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rec := make([]string, 0, t.Columns())
		for _, v := range row.Values {
			rec = append(rec, m.Bool(v))
		}
		if t.HasFormula() {
			rec = append(rec, row.Result.Render(m))
		}
		records[i] = rec
	}
	return records
}

// Mirror returns a copy of the table with the row order reversed.
func (t *Table) Mirror() *Table {
	rows := slices.Clone(t.Rows)
	slices.Reverse(rows)
	return &Table{
		Variables: t.Variables,
		Formula:   t.Formula,
		Mirrored:  !t.Mirrored,
		Rows:      rows,
	}
}

// FirstError returns the first formula error in row order, if any.
func (t *Table) FirstError() error {
	for _, row := range t.Rows {
		if row.Result.Kind == CellError {
			return row.Result.Err
		}
	}
	return nil
}

// Summary counts formula outcomes.
func (t *Table) Summary() Summary {
	s := Summary{HasFormula: t.HasFormula(), Rows: uint64(len(t.Rows))}
	for _, row := range t.Rows {
		switch row.Result.Kind {
		case CellTrue:
			s.True++
		case CellFalse:
			s.False++
		case CellError:
			s.Errors++
		}
	}
	return s
}

// Classification describes a formula by its truth table.
type Classification string

// Classifications.
const (
	Tautology     Classification = "tautology"
	Contradiction Classification = "contradiction"
	Contingent    Classification = "contingent"
	Undetermined  Classification = "undetermined"
)

// Summary holds formula outcome counts.
type Summary struct {
	HasFormula bool   `json:"has_formula" yaml:"has_formula"`
	Rows       uint64 `json:"rows" yaml:"rows"`
	True       uint64 `json:"true" yaml:"true"`
	False      uint64 `json:"false" yaml:"false"`
	Errors     uint64 `json:"errors" yaml:"errors"`
}

// Classification returns Undetermined when there is no formula or any row
// failed to evaluate.
func (s Summary) Classification() Classification {
	switch {
	case !s.HasFormula || s.Errors > 0:
		return Undetermined
	case s.False == 0:
		return Tautology
	case s.True == 0:
		return Contradiction
	default:
		return Contingent
	}
}
