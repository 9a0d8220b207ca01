// Package workbook loads YAML files that list several truth tables to build
// together, and watches them for changes.
//
// A workbook looks like:
//
//	mirrored: false
//	tables:
//	  - name: implication
//	    vars: A, B
//	    formula: "!A | B"
//	  - name: majority
//	    vars: [A, B, C]
//	    formula: "(A & B) | (A & C) | (B & C)"
//	    mirrored: true
package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

// ErrNoTables is returned for a workbook without entries.
var ErrNoTables = errors.New("workbook has no tables")

// Workbook is a parsed workbook file.
type Workbook struct {
	// Mirrored is the default row order for entries that do not set one.
	Mirrored *bool   `yaml:"mirrored,omitempty"`
	Tables   []Entry `yaml:"tables"`

	path string
}

// Entry is one table request.
type Entry struct {
	Name     string  `yaml:"name,omitempty"`
	Vars     VarList `yaml:"vars,omitempty"`
	Formula  string  `yaml:"formula,omitempty"`
	Mirrored *bool   `yaml:"mirrored,omitempty"`
}

// VarList is a comma-separated variable list. In YAML it may be written as
// a string or as a sequence of names.
type VarList string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (v *VarList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = VarList(node.Value)
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*v = VarList(strings.Join(names, ","))
		return nil
	default:
		return fmt.Errorf("line %d: vars must be a string or a list of names", node.Line)
	}
}

// Path returns the file the workbook was loaded from, if any.
func (wb *Workbook) Path() string { return wb.path }

// Load reads and validates the workbook at path.
func Load(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	wb, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	wb.path = path
	return wb, nil
}

// Parse decodes and validates a workbook. Unknown keys are rejected.
func Parse(data []byte) (*Workbook, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var wb Workbook
	if err := dec.Decode(&wb); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTables
		}
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	if err := wb.Validate(); err != nil {
		return nil, err
	}
	return &wb, nil
}

// Validate names unnamed entries ("table-N") and checks that names are
// unique and that every entry asks for at least one variable.
func (wb *Workbook) Validate() error {
	if len(wb.Tables) == 0 {
		return ErrNoTables
	}

	seen := make(map[string]int, len(wb.Tables))
	var errs []error
	for i := range wb.Tables {
		e := &wb.Tables[i]
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			e.Name = fmt.Sprintf("table-%d", i+1)
		}
		if first, dup := seen[e.Name]; dup {
			errs = append(errs, fmt.Errorf("table %d: name %q already used by table %d", i+1, e.Name, first+1))
			continue
		}
		seen[e.Name] = i

		if strings.TrimSpace(string(e.Vars)) == "" && strings.TrimSpace(e.Formula) == "" {
			errs = append(errs, fmt.Errorf("table %q: needs vars or a formula", e.Name))
		}
	}
	return errors.Join(errs...)
}

// Result is the outcome of one entry.
type Result struct {
	Entry Entry
	Table *truthtable.Table
	Err   error
}

// Run builds every entry in order. mirrored is the row order used when
// neither the workbook nor the entry sets one. Errors are per entry.
func (wb *Workbook) Run(b *truthtable.Builder, mirrored bool) []Result {
	if wb.Mirrored != nil {
		mirrored = *wb.Mirrored
	}

	results := make([]Result, len(wb.Tables))
	for i, e := range wb.Tables {
		m := mirrored
		if e.Mirrored != nil {
			m = *e.Mirrored
		}
		tbl, err := b.Generate(string(e.Vars), e.Formula, m)
		results[i] = Result{Entry: e, Table: tbl, Err: err}
	}
	return results
}

// Failed reports whether r could not be built or its formula did not
// evaluate on some row.
func (r Result) Failed() error {
	if r.Err != nil {
		return r.Err
	}
	return r.Table.FirstError()
}
