package token

import "fmt"

// Position represents a location in formula text.
type Position struct {
	Column int // 1-based column (in bytes)
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (column > 0).
func (p Position) IsValid() bool {
	return p.Column > 0
}

// String returns "column N", or "-" for an invalid position.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("column %d", p.Column)
}
