package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/hyperion-editor/hyperion/internal/grapheme"
	"github.com/hyperion-editor/hyperion/internal/input"
	"github.com/hyperion-editor/hyperion/internal/view"
)

const helpText = "^S Save  ^O Open  ^F Find  ^G Go to  ^K Copy  ^U Paste  ^Q Quit"

// Render draws the text area, the status line and the message line. A
// screen with no cells is left alone.
func (e *Editor) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	statusY := h - 2
	msgY := h - 1
	e.vp.Width = w
	e.vp.Height = max(h-2, 0)

	e.search.Refresh(e.buf)
	e.vp = view.Scroll(e.vp, e.buf, e.buf.Cursor(), e.opts)
	f := view.Render(e.vp, e.buf, e.buf.Cursor(), e.highlights(e.vp), e.opts)
	e.vp = f.Viewport

	s.SetStyle(e.styles.main)
	s.Clear()
	cursor := e.buf.Cursor()
	for y, row := range f.Rows {
		e.drawRow(s, y, w, f.GutterWidth, row, row.Line == cursor.Row)
	}

	if statusY >= 0 {
		e.renderStatusline(s, w, statusY)
	}
	promptX := e.renderMessageLine(s, w, msgY)

	switch {
	case e.Mode() != input.ModeNormal:
		s.SetCursorStyle(tcell.CursorStyleSteadyBar)
		s.ShowCursor(min(promptX, w-1), msgY)
	case f.CursorVisible:
		s.SetCursorStyle(tcell.CursorStyleSteadyBlock)
		s.ShowCursor(f.CursorX, f.CursorY)
	default:
		s.HideCursor()
	}
	s.Show()
}

// highlights returns the match spans on the lines vp shows.
func (e *Editor) highlights(vp view.Viewport) []view.Highlight {
	if e.search.Count() == 0 {
		return nil
	}
	cur, _ := e.search.Current()
	var hl []view.Highlight
	for line := vp.Top; line < vp.Top+vp.Height && line < e.buf.LineCount(); line++ {
		for _, m := range e.search.OnLine(line) {
			hl = append(hl, view.Highlight{Line: m.Line, StartCol: m.StartCol, EndCol: m.EndCol, Current: m == cur})
		}
	}
	return hl
}

func (e *Editor) drawRow(s tcell.Screen, y, w, gutterWidth int, row view.Row, active bool) {
	base := e.styles.main
	if row.Current {
		base = e.styles.currentLine
	}
	clearLine(s, y, w, base)

	gutterStyle := e.styles.lineNumber
	if active {
		gutterStyle = e.styles.lineNumberActive
	}
	drawText(s, 0, y, gutterWidth, row.Gutter, gutterStyle)

	for _, c := range row.Cells {
		x := gutterWidth + c.X
		if x >= w {
			break
		}
		style := base
		switch c.Kind {
		case view.Match:
			style = e.styles.match
		case view.CurrentMatch:
			style = e.styles.currentMatch
		}
		primary, combining := splitCluster(c.Text)
		s.SetContent(x, y, primary, combining, style)
	}
}

func (e *Editor) renderStatusline(s tcell.Screen, w, y int) {
	dirty := ""
	if e.Dirty() {
		dirty = "*"
	}
	cursor := e.buf.Cursor()
	left := fmt.Sprintf(" %s%s | Line %d/%d, Col %d ", e.displayName(), dirty, cursor.Row+1, e.buf.LineCount(), cursor.Col+1)
	right := " " + e.Mode().String() + " "
	drawClusters(s, 0, y, composeStatusLine(left, right, w), e.styles.status)
}

// renderMessageLine draws the prompt of the active mode, else the status
// message or the key help. It returns the x of the prompt cursor.
func (e *Editor) renderMessageLine(s tcell.Screen, w, y int) int {
	var left, right string
	switch m := e.disp.Mode().(type) {
	case input.Search:
		left = "Search: " + m.Pattern
		right = e.searchCounter(m.Pattern)
	case input.GotoLine:
		left = "Go to line: " + m.Input
	case input.Prompt:
		left = promptLabel(m.Purpose, e.Dirty()) + m.Text
	default:
		left = e.statusMessage
		if left == "" {
			left = helpText
		}
	}
	clearLine(s, y, w, e.styles.message)
	drawClusters(s, 0, y, composeStatusLine(left, right, w), e.styles.message)
	return textWidth(left)
}

func (e *Editor) searchCounter(pattern string) string {
	if pattern == "" {
		return ""
	}
	n := e.search.Count()
	if n == 0 {
		return "[no matches] "
	}
	return "[" + strconv.Itoa(e.search.CurrentIndex()+1) + "/" + strconv.Itoa(n) + "] "
}

func promptLabel(p input.Purpose, dirty bool) string {
	switch p {
	case input.PurposeOpen:
		if dirty {
			return "Open (discard changes): "
		}
		return "Open: "
	case input.PurposeSaveAs:
		return "Save as: "
	}
	return "> "
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") {
		if len(name) != 7 {
			return fallback
		}
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			return fallback
		}
		return tcell.NewHexColor(int32(v))
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return fallback
}

func clearLine(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// composeStatusLine lays left and right out on one line of width cells.
// When both do not fit, left is cut first.
func composeStatusLine(left, right string, width int) []string {
	if width <= 0 {
		return nil
	}
	l, r := grapheme.Split(left), grapheme.Split(right)
	if clustersWidth(l)+clustersWidth(r) > width {
		if clustersWidth(r) >= width {
			r = tail(r, width)
			l = nil
		} else {
			l = head(l, width-clustersWidth(r))
		}
	}
	pad := width - clustersWidth(l) - clustersWidth(r)
	line := make([]string, 0, len(l)+pad+len(r))
	line = append(line, l...)
	for i := 0; i < pad; i++ {
		line = append(line, " ")
	}
	return append(line, r...)
}

func head(clusters []string, width int) []string {
	used := 0
	for i, c := range clusters {
		used += grapheme.Width(c)
		if used > width {
			return clusters[:i]
		}
	}
	return clusters
}

func tail(clusters []string, width int) []string {
	used := 0
	for i := len(clusters) - 1; i >= 0; i-- {
		used += grapheme.Width(clusters[i])
		if used > width {
			return clusters[i+1:]
		}
	}
	return clusters
}

func clustersWidth(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += grapheme.Width(c)
	}
	return n
}

func textWidth(s string) int { return clustersWidth(grapheme.Split(s)) }

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	drawClusters(s, x, y, head(grapheme.Split(text), width), style)
}

func drawClusters(s tcell.Screen, x, y int, clusters []string, style tcell.Style) {
	for _, c := range clusters {
		primary, combining := splitCluster(c)
		s.SetContent(x, y, primary, combining, style)
		x += grapheme.Width(c)
	}
}

func splitCluster(c string) (rune, []rune) {
	runes := []rune(c)
	if len(runes) == 0 {
		return ' ', nil
	}
	if runes[0] == '\t' || runes[0] < ' ' {
		return ' ', nil
	}
	return runes[0], runes[1:]
}
