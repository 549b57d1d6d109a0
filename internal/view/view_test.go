package view

import (
	"strings"
	"testing"

	"github.com/hyperion-editor/hyperion/internal/buffer"
)

func doc(lines ...string) *buffer.Buffer {
	return buffer.New(strings.Join(lines, "\n"))
}

func TestScrollHorizontalScenario(t *testing.T) {
	src := doc(strings.Repeat("x", 30))
	vp := Scroll(Viewport{Height: 5, Width: 10}, src, buffer.Pos{Row: 0, Col: 25}, Options{TabWidth: 4})
	if vp.Left != 16 {
		t.Fatalf("Left = %d, want 16", vp.Left)
	}
	f := Render(vp, src, buffer.Pos{Row: 0, Col: 25}, nil, Options{TabWidth: 4})
	if !f.CursorVisible || f.CursorX != 9 || f.CursorY != 0 {
		t.Fatalf("cursor = (%d,%d) visible %v, want (9,0) visible", f.CursorX, f.CursorY, f.CursorVisible)
	}
	if got := len(f.Rows[0].Cells); got != 10 {
		t.Fatalf("visible cells = %d, want 10", got)
	}

	vp = Scroll(vp, src, buffer.Pos{Row: 0, Col: 3}, Options{TabWidth: 4})
	if vp.Left != 3 {
		t.Fatalf("Left after moving back = %d, want 3", vp.Left)
	}
}

func TestScrollVerticalIsMinimal(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	src := doc(lines...)
	vp := Viewport{Top: 0, Height: 10, Width: 20}

	vp = Scroll(vp, src, buffer.Pos{Row: 9}, Options{})
	if vp.Top != 0 {
		t.Fatalf("Top for last visible row = %d, want 0", vp.Top)
	}
	vp = Scroll(vp, src, buffer.Pos{Row: 10}, Options{})
	if vp.Top != 1 {
		t.Fatalf("Top one below = %d, want 1", vp.Top)
	}
	vp = Scroll(vp, src, buffer.Pos{Row: 40}, Options{})
	if vp.Top != 31 {
		t.Fatalf("Top after jump down = %d, want 31", vp.Top)
	}
	vp = Scroll(vp, src, buffer.Pos{Row: 5}, Options{})
	if vp.Top != 5 {
		t.Fatalf("Top after jump up = %d, want 5", vp.Top)
	}
}

func TestCursorAlwaysInsideFrame(t *testing.T) {
	src := doc("short", strings.Repeat("\t\u4e16a", 20), "", "end")
	vp := Viewport{Height: 2, Width: 12}
	opts := Options{TabWidth: 4, LineNumbers: true}
	for row := 0; row < src.LineCount(); row++ {
		for col := 0; col <= src.LineLen(row); col++ {
			f := Render(vp, src, buffer.Pos{Row: row, Col: col}, nil, opts)
			if !f.CursorVisible {
				t.Fatalf("cursor %d:%d not visible, viewport %+v", row, col, f.Viewport)
			}
			if f.CursorX < f.GutterWidth || f.CursorX >= vp.Width || f.CursorY < 0 || f.CursorY >= vp.Height {
				t.Fatalf("cursor %d:%d drawn at (%d,%d)", row, col, f.CursorX, f.CursorY)
			}
			vp = f.Viewport
		}
	}
}

func TestGutterWidth(t *testing.T) {
	on := Options{LineNumbers: true}
	tests := []struct {
		lines int
		want  int
	}{
		{0, 3},
		{1, 3},
		{9, 3},
		{10, 4},
		{999, 5},
		{1000, 6},
	}
	for _, tt := range tests {
		if got := GutterWidth(tt.lines, on); got != tt.want {
			t.Fatalf("GutterWidth(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
	if got := GutterWidth(100, Options{}); got != 0 {
		t.Fatalf("GutterWidth with numbers off = %d, want 0", got)
	}
}

func TestRenderGutterAndRows(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "abc"
	}
	src := doc(lines...)
	f := Render(Viewport{Top: 8, Height: 6, Width: 20}, src, buffer.Pos{Row: 9, Col: 1}, nil, Options{LineNumbers: true, HighlightCurrentLine: true})
	if f.GutterWidth != 4 {
		t.Fatalf("GutterWidth = %d, want 4", f.GutterWidth)
	}
	if got := f.Rows[0].Gutter; got != "  9 " {
		t.Fatalf("gutter row 0 = %q, want %q", got, "  9 ")
	}
	if got := f.Rows[3].Gutter; got != " 12 " {
		t.Fatalf("gutter row 3 = %q, want %q", got, " 12 ")
	}
	if f.Rows[4].Line != -1 || f.Rows[4].Gutter != "    " || len(f.Rows[4].Cells) != 0 {
		t.Fatalf("row past end = %+v", f.Rows[4])
	}
	if !f.Rows[1].Current || f.Rows[0].Current {
		t.Fatalf("current line flag misplaced")
	}
	if f.CursorX != 5 || f.CursorY != 1 {
		t.Fatalf("cursor = (%d,%d), want (5,1)", f.CursorX, f.CursorY)
	}
}

func TestRenderSearchHighlights(t *testing.T) {
	src := doc("foo bar", "baz foo", "qux")
	hl := []Highlight{
		{Line: 0, StartCol: 0, EndCol: 3, Current: true},
		{Line: 1, StartCol: 4, EndCol: 7},
	}
	f := Render(Viewport{Height: 3, Width: 20}, src, buffer.Pos{}, hl, Options{TabWidth: 4})
	kinds := func(r Row) string {
		var sb strings.Builder
		for _, c := range r.Cells {
			sb.WriteByte("-mC"[c.Kind])
		}
		return sb.String()
	}
	if got := kinds(f.Rows[0]); got != "CCC----" {
		t.Fatalf("row 0 kinds = %q", got)
	}
	if got := kinds(f.Rows[1]); got != "----mmm" {
		t.Fatalf("row 1 kinds = %q", got)
	}
	if got := kinds(f.Rows[2]); got != "---" {
		t.Fatalf("row 2 kinds = %q", got)
	}
}

func TestRenderTabsAndWideGraphemes(t *testing.T) {
	src := doc("a\tb", "\u4e16\u754cx")
	f := Render(Viewport{Height: 2, Width: 20}, src, buffer.Pos{Row: 0, Col: 2}, nil, Options{TabWidth: 4})
	if got := f.Rows[0].Text(); got != "a   b" {
		t.Fatalf("tab row = %q, want %q", got, "a   b")
	}
	if f.CursorX != 4 {
		t.Fatalf("cursor after tab = %d, want 4", f.CursorX)
	}
	cells := f.Rows[1].Cells
	if len(cells) != 3 || cells[1].X != 2 || cells[1].Width != 2 || cells[2].X != 4 {
		t.Fatalf("wide cells = %+v", cells)
	}
}

func TestRenderTruncatesWideGraphemeAtEdge(t *testing.T) {
	src := doc("ab\u4e16")
	f := Render(Viewport{Height: 1, Width: 3}, src, buffer.Pos{}, nil, Options{TabWidth: 4})
	if got := f.Rows[0].Text(); got != "ab" {
		t.Fatalf("row = %q, want %q", got, "ab")
	}
}

func TestRenderScrolledPastWideGrapheme(t *testing.T) {
	src := doc("\u4e16\u4e16\u4e16\u4e16")
	f := Render(Viewport{Height: 1, Width: 4}, src, buffer.Pos{Row: 0, Col: 4}, nil, Options{TabWidth: 4})
	if f.Viewport.Left != 3 {
		t.Fatalf("Left = %d, want 3", f.Viewport.Left)
	}
	if f.CursorX != 2 {
		t.Fatalf("cursor x = %d, want 2", f.CursorX)
	}
}

func TestRenderZeroSize(t *testing.T) {
	f := Render(Viewport{}, doc("abc"), buffer.Pos{}, nil, Options{})
	if len(f.Rows) != 0 || f.CursorVisible {
		t.Fatalf("zero-size frame = %+v", f)
	}
}
