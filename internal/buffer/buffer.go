// Package buffer is the text buffer: the document lines and the cursor.
// All document mutation goes through a Buffer, and every operation keeps
// the cursor addressable. Columns are grapheme-cluster indices.
package buffer

import (
	"strings"

	"github.com/hyperion-editor/hyperion/internal/grapheme"
)

// Pos is a cursor position. Col counts grapheme clusters.
type Pos struct {
	Row int
	Col int
}

// Less orders positions by row, then column.
func (p Pos) Less(o Pos) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

type Buffer struct {
	lines   [][]string
	cursor  Pos
	wantCol int // preferred column for vertical moves, -1 when unset
	version uint64
}

// New returns a buffer holding text with the cursor at the origin.
func New(text string) *Buffer {
	b := &Buffer{wantCol: -1}
	b.Load(text)
	return b
}

// Load replaces the whole document. "\r\n" is read as a single line break;
// Serialize writes every break back as "\n".
func (b *Buffer) Load(text string) {
	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.wantCol = -1
	b.version++
}

// Serialize joins the lines with "\n". It is the inverse of Load for text
// without "\r\n" line endings.
func (b *Buffer) Serialize() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range line {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineClusters returns the clusters of row. The slice is owned by the
// buffer and must not be modified.
func (b *Buffer) LineClusters(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// LineLen returns the grapheme count of row.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Lines returns a copy of the document as strings.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i := range b.lines {
		out[i] = grapheme.Join(b.lines[i])
	}
	return out
}

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor to p, clamped into the document.
func (b *Buffer) SetCursor(p Pos) {
	b.cursor = b.clampPos(p)
	b.wantCol = -1
}

// Version increases on every document mutation. Cursor moves do not
// change it.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) clampPos(p Pos) Pos {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= len(b.lines) {
		p.Row = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.lines[p.Row]); p.Col > n {
		p.Col = n
	}
	return p
}

func splitLines(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]string, len(parts))
	for i, p := range parts {
		lines[i] = grapheme.Split(p)
	}
	return lines
}
