package truthtable

import (
	"regexp"
	"slices"
	"strings"
)

var (
	// variablePattern matches the letter runs that name variables in formulas.
	variablePattern = regexp.MustCompile(`[A-Za-z]+`)
	namePattern     = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Variables is an ordered, duplicate-free list of variable names. The order
// determines column order and bit significance: the first variable is the
// most significant bit of the row index.
type Variables []string

// NewVariables sorts and deduplicates names.
func NewVariables(names ...string) Variables {
	vs := slices.Clone(names)
	slices.Sort(vs)
	return Variables(slices.Compact(vs))
}

// Index returns the position of name, or -1.
func (v Variables) Index(name string) int {
	return slices.Index(v, name)
}

// Contains reports whether name is in the set.
func (v Variables) Contains(name string) bool {
	return v.Index(name) >= 0
}

// String joins the names with ", ".
func (v Variables) String() string {
	return strings.Join(v, ", ")
}

// CollectVariables returns the union of the comma-separated names in list
// and the letter runs of formulaText, sorted and deduplicated.
//
// List entries are trimmed and empty entries dropped. It fails with
// ErrEmptyInput when the result would be empty, and with ErrInvalidVariable
// when a list entry is not a run of letters.
func CollectVariables(list, formulaText string) (Variables, error) {
	listNames, err := SplitVariableList(list)
	if err != nil {
		return nil, err
	}
	if len(listNames) == 0 && strings.TrimSpace(formulaText) == "" {
		return nil, ErrEmptyInput
	}

	names := append(listNames, ExtractVariables(formulaText)...)
	vars := NewVariables(names...)
	if len(vars) == 0 {
		return nil, ErrEmptyInput
	}
	return vars, nil
}

// SplitVariableList splits list on commas, trimming whitespace around each
// entry and dropping empty entries.
func SplitVariableList(list string) ([]string, error) {
	var names []string
	for _, part := range strings.Split(list, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if !namePattern.MatchString(name) {
			return nil, &InvalidVariableError{Name: name}
		}
		names = append(names, name)
	}
	return names, nil
}

// ExtractVariables returns the maximal letter runs of text in order of
// appearance, duplicates included.
func ExtractVariables(text string) []string {
	return variablePattern.FindAllString(text, -1)
}
