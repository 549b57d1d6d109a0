package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// pieces mixes plain text with combining marks, regional indicators and
// joiners, alone and inside clusters.
var pieces = []string{
	"a", "b", "Z", "7", " ", "\t", "\u00e9", "\u4e16",
	"e\u0301", "\u0301", "\u0301\u0301",
	"\U0001F1FA", "\U0001F1F8", "\U0001F1FA\U0001F1F8",
	"\U0001F469\u200d\U0001F4BB", "\u200d", "\U0001F469",
}

func drawDocument(t *rapid.T) string {
	lines := rapid.SliceOfN(
		rapid.Custom(func(t *rapid.T) string {
			return strings.Join(rapid.SliceOfN(rapid.SampledFrom(pieces), 0, 12).Draw(t, "pieces"), "")
		}),
		1, 6,
	).Draw(t, "lines")
	return strings.Join(lines, "\n")
}

func drawCursor(t *rapid.T, b *Buffer) Pos {
	row := rapid.IntRange(0, b.LineCount()-1).Draw(t, "row")
	col := rapid.IntRange(0, b.LineLen(row)).Draw(t, "col")
	return Pos{Row: row, Col: col}
}

// TestProperty_LoadSerializeRoundTrip verifies that serializing a loaded
// document gives back the same text.
func TestProperty_LoadSerializeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := drawDocument(t)
		b := New(text)
		assert.Equal(t, text, b.Serialize())

		again := New(b.Serialize())
		assert.Equal(t, b.Lines(), again.Lines())
	})
}

// TestProperty_InsertThenDeleteIsIdentity verifies that inserting a
// grapheme and deleting it again restores content and cursor.
func TestProperty_InsertThenDeleteIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(drawDocument(t))
		b.SetCursor(drawCursor(t, b))
		before := b.Lines()
		cursor := b.Cursor()

		r := rapid.SampledFrom([]rune{
			'a', 'Z', '7', ' ', '\t', '\u00e9', '\u4e16',
			'\u0301', '\U0001F1FA', '\U0001F1F8', '\U0001F4BB',
		}).Draw(t, "rune")
		b.InsertChar(r)
		require.Equal(t, cursor.Col+1, b.Cursor().Col)
		b.DeleteBefore()

		assert.Equal(t, before, b.Lines())
		assert.Equal(t, cursor, b.Cursor())
	})
}

// TestProperty_NewlineThenDeleteIsIdentity verifies that a split followed by
// a backspace joins the line back together.
func TestProperty_NewlineThenDeleteIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(drawDocument(t))
		b.SetCursor(drawCursor(t, b))
		before := b.Lines()
		cursor := b.Cursor()

		b.InsertNewline()
		b.DeleteBefore()

		assert.Equal(t, before, b.Lines())
		assert.Equal(t, cursor, b.Cursor())
	})
}

// TestProperty_MoveInverseReturns verifies that a move followed by the
// opposite move returns to the start unless the first move was clamped.
func TestProperty_MoveInverseReturns(t *testing.T) {
	inverse := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	rapid.Check(t, func(t *rapid.T) {
		b := New(drawDocument(t))
		b.SetCursor(drawCursor(t, b))
		start := b.Cursor()

		dir := rapid.SampledFrom([]Direction{Up, Down, Left, Right}).Draw(t, "dir")
		b.Move(dir, Grapheme)
		moved := b.Cursor()
		if moved == start {
			return
		}
		if (dir == Up || dir == Down) && moved.Col != start.Col {
			// clamped onto a shorter line
			return
		}
		b.Move(inverse[dir], Grapheme)
		assert.Equal(t, start, b.Cursor())
	})
}

// TestProperty_CursorAlwaysValid verifies the invariants after any sequence
// of operations.
func TestProperty_CursorAlwaysValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(drawDocument(t))
		n := rapid.IntRange(1, 30).Draw(t, "ops")
		for i := 0; i < n; i++ {
			switch rapid.IntRange(0, 8).Draw(t, "op") {
			case 0:
				b.InsertChar(rapid.Rune().Draw(t, "r"))
			case 1:
				b.InsertNewline()
			case 2:
				b.DeleteBefore()
			case 3:
				b.DeleteAfter()
			case 4:
				dir := rapid.SampledFrom([]Direction{Up, Down, Left, Right}).Draw(t, "dir")
				unit := rapid.SampledFrom([]Unit{Grapheme, Line}).Draw(t, "unit")
				b.Move(dir, unit)
			case 5:
				b.GotoLine(rapid.IntRange(-10, 50).Draw(t, "line"))
			case 6:
				b.MovePage(rapid.SampledFrom([]Direction{Up, Down}).Draw(t, "pdir"), rapid.IntRange(0, 10).Draw(t, "rows"))
			case 7:
				b.InsertText(rapid.StringMatching(`[a-z\n]{0,8}`).Draw(t, "text"))
			case 8:
				b.SetCursor(Pos{Row: rapid.IntRange(-5, 50).Draw(t, "srow"), Col: rapid.IntRange(-5, 50).Draw(t, "scol")})
			}
			require.NoError(t, b.Validate())
		}
	})
}

// TestProperty_GotoLineStaysInRange verifies that any line number lands
// inside the document, clamping to the last line.
func TestProperty_GotoLineStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(drawDocument(t))
		n := rapid.IntRange(-1000, 1000).Draw(t, "n")
		b.GotoLine(n)
		c := b.Cursor()
		assert.GreaterOrEqual(t, c.Row, 0)
		assert.Less(t, c.Row, b.LineCount())
		assert.Equal(t, 0, c.Col)
		if n >= b.LineCount() {
			assert.Equal(t, b.LineCount()-1, c.Row)
		}
	})
}
