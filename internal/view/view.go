// Package view computes what the text area shows: the scroll position, the
// gutter and the visible cells of every line, with search highlights. It
// never touches a screen; the editor draws the Frame it returns.
package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hyperion-editor/hyperion/internal/buffer"
	"github.com/hyperion-editor/hyperion/internal/grapheme"
)

// Viewport is the visible window onto the document. Top is a line index and
// Left a grapheme index applied to every line. Height and Width are the text
// area size in cells; Width includes the gutter.
type Viewport struct {
	Top    int
	Left   int
	Height int
	Width  int
}

type Options struct {
	TabWidth             int
	LineNumbers          bool
	HighlightCurrentLine bool
}

// Source is the read-only document the renderer draws.
type Source interface {
	LineCount() int
	LineClusters(row int) []string
}

// Kind marks how a cell is highlighted.
type Kind int

const (
	None Kind = iota
	Match
	CurrentMatch
)

// Highlight is a span of grapheme columns [StartCol, EndCol) on one line.
type Highlight struct {
	Line     int
	StartCol int
	EndCol   int
	Current  bool
}

// Cell is one drawn grapheme. Tabs are expanded into single-space cells.
type Cell struct {
	X     int // offset from the start of the text area
	Text  string
	Width int
	Kind  Kind
}

// Row is one screen line of the text area. Line is -1 below the end of the
// document.
type Row struct {
	Line    int
	Gutter  string
	Current bool
	Cells   []Cell
}

// Text returns the visible text of the row without the gutter, padding gaps
// left by wide graphemes.
func (r Row) Text() string {
	var sb strings.Builder
	x := 0
	for _, c := range r.Cells {
		for x < c.X {
			sb.WriteByte(' ')
			x++
		}
		sb.WriteString(c.Text)
		x += c.Width
	}
	return sb.String()
}

type Frame struct {
	Viewport      Viewport
	GutterWidth   int
	Rows          []Row
	CursorX       int
	CursorY       int
	CursorVisible bool
}

// GutterWidth returns the width of the line-number column: the digits of the
// last line number with one space on each side, or 0 when numbers are off.
func GutterWidth(lineCount int, opts Options) int {
	if !opts.LineNumbers {
		return 0
	}
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount)) + 2
}

// Scroll returns vp moved just enough to show the cursor. A cursor above or
// below the window puts its line at the top or bottom edge; horizontally the
// offset moves until the cursor cell fits inside the text columns.
func Scroll(vp Viewport, src Source, cursor buffer.Pos, opts Options) Viewport {
	if vp.Height > 0 {
		if cursor.Row < vp.Top {
			vp.Top = cursor.Row
		} else if cursor.Row >= vp.Top+vp.Height {
			vp.Top = cursor.Row - vp.Height + 1
		}
	}
	if vp.Top < 0 {
		vp.Top = 0
	}
	if vp.Left < 0 {
		vp.Left = 0
	}
	if cursor.Col < vp.Left {
		vp.Left = cursor.Col
	}

	text := vp.Width - GutterWidth(src.LineCount(), opts)
	if text <= 0 {
		return vp
	}
	line := src.LineClusters(cursor.Row)
	col := cursor.Col
	if col > len(line) {
		col = len(line)
	}
	if vp.Left > col {
		vp.Left = col
	}
	stops := columns(line, tabWidth(opts))
	need := stops[col] + cursorWidth(line, col) - text
	if stops[vp.Left] < need {
		vp.Left = sort.SearchInts(stops[:col+1], need)
		if vp.Left > col {
			vp.Left = col
		}
	}
	return vp
}

// Render scrolls vp to the cursor and lays out every visible row.
func Render(vp Viewport, src Source, cursor buffer.Pos, hl []Highlight, opts Options) Frame {
	vp = Scroll(vp, src, cursor, opts)
	gw := GutterWidth(src.LineCount(), opts)
	text := vp.Width - gw
	if text < 0 {
		text = 0
	}
	tab := tabWidth(opts)
	byLine := make(map[int][]Highlight, len(hl))
	for _, h := range hl {
		byLine[h.Line] = append(byLine[h.Line], h)
	}

	f := Frame{Viewport: vp, GutterWidth: gw, Rows: make([]Row, 0, max(vp.Height, 0))}
	for y := 0; y < vp.Height; y++ {
		n := vp.Top + y
		if n >= src.LineCount() {
			f.Rows = append(f.Rows, Row{Line: -1, Gutter: strings.Repeat(" ", gw)})
			continue
		}
		row := Row{
			Line:    n,
			Current: opts.HighlightCurrentLine && n == cursor.Row,
			Cells:   lineCells(src.LineClusters(n), vp.Left, text, tab, byLine[n]),
		}
		if gw > 0 {
			row.Gutter = fmt.Sprintf("%*d ", gw-1, n+1)
		}
		f.Rows = append(f.Rows, row)
	}

	cy := cursor.Row - vp.Top
	if cy < 0 || cy >= vp.Height || text == 0 {
		return f
	}
	line := src.LineClusters(cursor.Row)
	stops := columns(line, tab)
	left := min(vp.Left, len(line))
	col := min(cursor.Col, len(line))
	if cx := stops[col] - stops[left]; cx < text {
		f.CursorX = gw + cx
		f.CursorY = cy
		f.CursorVisible = true
	}
	return f
}

func lineCells(line []string, left, width, tab int, hl []Highlight) []Cell {
	if left >= len(line) || width <= 0 {
		return nil
	}
	stops := columns(line, tab)
	base := stops[left]
	cells := make([]Cell, 0, min(len(line)-left, width))
	for i := left; i < len(line); i++ {
		x := stops[i] - base
		w := stops[i+1] - stops[i]
		kind := kindAt(hl, i)
		if line[i] == "\t" {
			if x >= width {
				break
			}
			for k := 0; k < w && x+k < width; k++ {
				cells = append(cells, Cell{X: x + k, Text: " ", Width: 1, Kind: kind})
			}
			continue
		}
		if x+w > width {
			break
		}
		cells = append(cells, Cell{X: x, Text: line[i], Width: w, Kind: kind})
	}
	return cells
}

func kindAt(hl []Highlight, col int) Kind {
	kind := None
	for _, h := range hl {
		if col < h.StartCol || col >= h.EndCol {
			continue
		}
		if h.Current {
			return CurrentMatch
		}
		kind = Match
	}
	return kind
}

// columns returns the absolute cell offset of every grapheme index of line,
// plus the offset just past the end. Tab stops are measured from column 0.
func columns(line []string, tab int) []int {
	stops := make([]int, len(line)+1)
	x := 0
	for i, g := range line {
		stops[i] = x
		if g == "\t" {
			x += tab - x%tab
		} else {
			x += grapheme.Width(g)
		}
	}
	stops[len(line)] = x
	return stops
}

// cursorWidth is the number of cells that must be visible for the cursor at
// col: the grapheme under it, or one cell at the end of the line or on a tab.
func cursorWidth(line []string, col int) int {
	if col >= len(line) || line[col] == "\t" {
		return 1
	}
	return grapheme.Width(line[col])
}

func tabWidth(opts Options) int {
	if opts.TabWidth < 1 {
		return 1
	}
	return opts.TabWidth
}
