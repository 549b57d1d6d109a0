package buffer

// Direction is the direction of a cursor move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Unit is the granularity of a cursor move.
//
// Left/Right with Grapheme step one cluster; with Line they jump to the
// line start or end. Up/Down step one line for either unit.
type Unit int

const (
	Grapheme Unit = iota
	Line
)

// Move moves the cursor. Horizontal moves stop at the line edges; vertical
// moves keep the column when the target line is long enough and clamp to
// its end otherwise. The column before a clamp is remembered, so moving on
// to a longer line restores it.
func (b *Buffer) Move(dir Direction, unit Unit) {
	pos := b.cursor
	switch dir {
	case Left:
		b.wantCol = -1
		if unit == Line {
			pos.Col = 0
		} else if pos.Col > 0 {
			pos.Col--
		}
	case Right:
		b.wantCol = -1
		if unit == Line {
			pos.Col = len(b.lines[pos.Row])
		} else if pos.Col < len(b.lines[pos.Row]) {
			pos.Col++
		}
	case Up:
		if pos.Row > 0 {
			pos = b.vertical(pos, pos.Row-1)
		}
	case Down:
		if pos.Row < len(b.lines)-1 {
			pos = b.vertical(pos, pos.Row+1)
		}
	}
	b.cursor = pos
}

// MovePage moves the cursor up or down by rows lines, clamped to the
// document. Left and Right are ignored.
func (b *Buffer) MovePage(dir Direction, rows int) {
	if rows < 1 {
		rows = 1
	}
	target := b.cursor.Row
	switch dir {
	case Up:
		target -= rows
	case Down:
		target += rows
	default:
		return
	}
	if target < 0 {
		target = 0
	}
	if target > len(b.lines)-1 {
		target = len(b.lines) - 1
	}
	if target == b.cursor.Row {
		return
	}
	b.cursor = b.vertical(b.cursor, target)
}

// MoveDocument jumps to the first line start (Up, Left) or the last line
// end (Down, Right).
func (b *Buffer) MoveDocument(dir Direction) {
	b.wantCol = -1
	switch dir {
	case Up, Left:
		b.cursor = Pos{}
	default:
		last := len(b.lines) - 1
		b.cursor = Pos{Row: last, Col: len(b.lines[last])}
	}
}

// GotoLine moves the cursor to the start of line n, with n clamped into
// [0, LineCount).
func (b *Buffer) GotoLine(n int) {
	b.GotoPosition(n, 0)
}

// GotoPosition moves the cursor to (n, col), both clamped.
func (b *Buffer) GotoPosition(n, col int) {
	b.cursor = b.clampPos(Pos{Row: n, Col: col})
	b.wantCol = -1
}

func (b *Buffer) vertical(pos Pos, row int) Pos {
	want := pos.Col
	if b.wantCol >= 0 {
		want = b.wantCol
	}
	col := want
	if n := len(b.lines[row]); col > n {
		col = n
		b.wantCol = want
	} else {
		b.wantCol = -1
	}
	return Pos{Row: row, Col: col}
}
