package buffer

import (
	"fmt"
	"strings"
)

// InvariantError reports a document or cursor state that the clamped
// operations should never produce.
type InvariantError struct {
	Cursor Pos
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("buffer invariant violated at %d:%d: %s", e.Cursor.Row, e.Cursor.Col, e.Detail)
}

// Validate checks the document and cursor invariants. It returns nil or an
// *InvariantError.
func (b *Buffer) Validate() error {
	c := b.cursor
	switch {
	case len(b.lines) == 0:
		return &InvariantError{Cursor: c, Detail: "document has no lines"}
	case c.Row < 0 || c.Row >= len(b.lines):
		return &InvariantError{Cursor: c, Detail: fmt.Sprintf("row outside [0,%d)", len(b.lines))}
	case c.Col < 0 || c.Col > len(b.lines[c.Row]):
		return &InvariantError{Cursor: c, Detail: fmt.Sprintf("column outside [0,%d]", len(b.lines[c.Row]))}
	}
	for i, line := range b.lines {
		for _, g := range line {
			if g == "" || strings.ContainsRune(g, '\n') {
				return &InvariantError{Cursor: c, Detail: fmt.Sprintf("line %d holds an invalid cluster %q", i, g)}
			}
		}
	}
	return nil
}
