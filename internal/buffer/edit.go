package buffer

import (
	"strings"

	"github.com/hyperion-editor/hyperion/internal/grapheme"
)

// InsertChar inserts r at the cursor as a cluster of its own and moves the
// cursor past it. Runes that are neither printable nor tab are ignored.
// Neighbouring clusters are left untouched, so a typed combining mark or
// regional indicator does not fuse with existing text.
func (b *Buffer) InsertChar(r rune) {
	if !grapheme.Insertable(r) {
		return
	}
	b.insertCluster(string(r))
}

func (b *Buffer) insertCluster(c string) {
	pos := b.cursor
	line := b.lines[pos.Row]
	next := make([]string, 0, len(line)+1)
	next = append(next, line[:pos.Col]...)
	next = append(next, c)
	next = append(next, line[pos.Col:]...)
	b.lines[pos.Row] = next
	b.cursor = Pos{Row: pos.Row, Col: pos.Col + 1}
	b.wantCol = -1
	b.version++
}

// InsertText inserts s at the cursor one grapheme cluster at a time; "\n"
// and "\r\n" split lines. Control runes are dropped.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for i, part := range strings.Split(s, "\n") {
		if i > 0 {
			b.InsertNewline()
		}
		for _, c := range grapheme.Split(part) {
			if c = grapheme.Clean(c); c != "" {
				b.insertCluster(c)
			}
		}
	}
}

// DeleteBefore removes the grapheme before the cursor. At column 0 the line
// is joined onto the previous one. No-op at the document start.
func (b *Buffer) DeleteBefore() {
	pos := b.cursor
	if pos.Col > 0 {
		line := b.lines[pos.Row]
		b.lines[pos.Row] = resegment(line[:pos.Col-1], line[pos.Col:])
		b.cursor = b.clampPos(Pos{Row: pos.Row, Col: pos.Col - 1})
		b.wantCol = -1
		b.version++
		return
	}
	if pos.Row == 0 {
		return
	}
	prevLen := len(b.lines[pos.Row-1])
	b.joinLine(pos.Row - 1)
	b.cursor = b.clampPos(Pos{Row: pos.Row - 1, Col: prevLen})
	b.wantCol = -1
	b.version++
}

// DeleteAfter removes the grapheme under the cursor. At the end of a line
// the next line is joined onto it. No-op at the document end.
func (b *Buffer) DeleteAfter() {
	pos := b.cursor
	line := b.lines[pos.Row]
	if pos.Col < len(line) {
		b.lines[pos.Row] = resegment(line[:pos.Col], line[pos.Col+1:])
		b.cursor = b.clampPos(pos)
		b.wantCol = -1
		b.version++
		return
	}
	if pos.Row+1 >= len(b.lines) {
		return
	}
	b.joinLine(pos.Row)
	b.cursor = b.clampPos(pos)
	b.wantCol = -1
	b.version++
}

// joinLine appends line row+1 to line row and removes row+1.
func (b *Buffer) joinLine(row int) {
	b.lines[row] = resegment(b.lines[row], b.lines[row+1])
	copy(b.lines[row+1:], b.lines[row+2:])
	b.lines[len(b.lines)-1] = nil
	b.lines = b.lines[:len(b.lines)-1]
}

// resegment concatenates two cluster runs. Clusters can merge across the
// seam (a leading combining mark, a split flag pair), so the seam is
// segmented again.
func resegment(left, right []string) []string {
	if len(left) == 0 {
		return append([]string(nil), right...)
	}
	if len(right) == 0 {
		return append([]string(nil), left...)
	}
	seam := grapheme.Split(left[len(left)-1] + right[0])
	out := make([]string, 0, len(left)+len(right))
	out = append(out, left[:len(left)-1]...)
	out = append(out, seam...)
	out = append(out, right[1:]...)
	return out
}
