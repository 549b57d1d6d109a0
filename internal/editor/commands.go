package editor

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/hyperion-editor/hyperion/internal/buffer"
	"github.com/hyperion-editor/hyperion/internal/input"
	"github.com/hyperion-editor/hyperion/internal/logger"
	"github.com/hyperion-editor/hyperion/internal/view"
)

// HandleKey feeds one key through the dispatcher and applies the resulting
// command. It reports whether the session should end.
func (e *Editor) HandleKey(k input.Key) bool {
	if e.Mode() == input.ModeNormal {
		e.statusMessage = ""
	}
	cmd, ok := e.disp.Dispatch(k)
	if !ok {
		return false
	}
	return e.Apply(cmd)
}

// Apply runs one command against the session. It reports whether the
// session should end.
func (e *Editor) Apply(cmd input.Command) bool {
	logger.Debug("command", "kind", cmd.Kind.String())
	if cmd.Kind != input.CmdQuit {
		e.quitArmed = false
	}

	switch cmd.Kind {
	case input.CmdInsertChar:
		e.buf.InsertChar(cmd.Rune)
	case input.CmdInsertNewline:
		e.buf.InsertNewline()
	case input.CmdDeleteBefore:
		e.buf.DeleteBefore()
	case input.CmdDeleteAfter:
		e.buf.DeleteAfter()
	case input.CmdMove:
		e.buf.Move(cmd.Dir, cmd.Unit)
	case input.CmdMovePage:
		e.buf.MovePage(cmd.Dir, e.vp.Height)
	case input.CmdMoveDocument:
		e.buf.MoveDocument(cmd.Dir)

	case input.CmdSave:
		e.save()
	case input.CmdQuit:
		if e.quit() {
			return true
		}

	case input.CmdCopyLine:
		e.clip.Copy(e.buf.Line(e.buf.Cursor().Row))
		e.setStatus("Copied line")
	case input.CmdPaste:
		text := e.clip.Paste()
		if text == "" {
			e.setStatus("Clipboard is empty")
			break
		}
		e.buf.InsertText(text)

	case input.CmdSearchStart:
		e.searchOrigin = e.buf.Cursor()
		e.search.Reset()
	case input.CmdSearchUpdate:
		e.updateSearch(cmd.Text)
	case input.CmdSearchNext, input.CmdSearchPrev:
		e.stepSearch(cmd.Kind == input.CmdSearchNext)
	case input.CmdSearchAccept:
		e.acceptSearch(cmd.Text)
	case input.CmdSearchCancel:
		e.search.Reset()
		e.buf.SetCursor(e.searchOrigin)
	case input.CmdSearchClear:
		e.search.Reset()

	case input.CmdGotoLine:
		if cmd.HasCol {
			e.buf.GotoPosition(cmd.Line, cmd.Col)
		} else {
			e.buf.GotoLine(cmd.Line)
		}
	case input.CmdGotoStart, input.CmdGotoCancel, input.CmdPromptStart:
		// mode change only

	case input.CmdPromptSubmit:
		e.submitPrompt(cmd.Purpose, cmd.Text)
	case input.CmdPromptCancel:
		e.setStatus("Cancelled")
	}

	e.search.Refresh(e.buf)
	e.vp = view.Scroll(e.vp, e.buf, e.buf.Cursor(), e.opts)
	if err := e.buf.Validate(); err != nil {
		logger.Error("buffer invariant violated", "command", cmd.Kind.String(), "err", err)
		e.setStatus("Internal error: " + err.Error())
	}
	return false
}

func (e *Editor) save() {
	if e.filename == "" {
		e.disp.BeginPrompt(input.PurposeSaveAs, "")
		return
	}
	e.saveAs(e.filename)
}

func (e *Editor) saveAs(path string) {
	if err := e.Save(path); err != nil {
		e.setStatus("Error writing " + path + ": " + errText(err))
		return
	}
	e.setStatus("Wrote " + countOf(e.buf.LineCount(), "line") + " to " + e.displayName())
}

func (e *Editor) submitPrompt(purpose input.Purpose, text string) {
	switch purpose {
	case input.PurposeOpen:
		if err := e.OpenFile(text); err != nil {
			e.setStatus("Error reading " + text + ": " + errText(err))
		}
	case input.PurposeSaveAs:
		e.saveAs(text)
	}
}

// quit reports whether the session may end. With confirm-quit set, a dirty
// buffer needs a second Ctrl+Q in a row.
func (e *Editor) quit() bool {
	if !e.confirmQuit || !e.Dirty() || e.quitArmed {
		return true
	}
	e.quitArmed = true
	e.setStatus("Unsaved changes. Press Ctrl+Q again to quit, Ctrl+S to save")
	return false
}

func (e *Editor) updateSearch(pattern string) {
	if e.search.Search(pattern, e.buf) == 0 {
		e.buf.SetCursor(e.searchOrigin)
		return
	}
	if m, ok := e.search.Current(); ok {
		e.jumpTo(m.Line, m.StartCol)
	}
}

func (e *Editor) stepSearch(forward bool) {
	if !e.search.Active() {
		e.setStatus("No active search")
		return
	}
	e.search.Refresh(e.buf)
	next := e.search.Prev
	if forward {
		next = e.search.Next
	}
	m, ok := next()
	if !ok {
		e.setStatus("No matches for " + e.search.Pattern())
		return
	}
	e.jumpTo(m.Line, m.StartCol)
}

func (e *Editor) acceptSearch(pattern string) {
	if pattern == "" {
		e.search.Reset()
		return
	}
	n := e.search.Count()
	if n == 0 {
		e.search.Reset()
		e.buf.SetCursor(e.searchOrigin)
		e.setStatus("No matches for " + pattern)
		return
	}
	e.setStatus(countOf(n, "match"))
}

func (e *Editor) jumpTo(line, col int) {
	e.buf.SetCursor(buffer.Pos{Row: line, Col: col})
}

// countOf formats n with noun, pluralized for anything but one.
func countOf(n int, noun string) string {
	if n != 1 {
		if strings.HasSuffix(noun, "ch") {
			noun += "es"
		} else {
			noun += "s"
		}
	}
	return strconv.Itoa(n) + " " + noun
}

// errText reports the OS-level cause without repeating the path.
func errText(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
