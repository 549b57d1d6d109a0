package input

import (
	"math"
	"strconv"
	"strings"

	"github.com/hyperion-editor/hyperion/internal/buffer"
	"github.com/hyperion-editor/hyperion/internal/grapheme"
)

type ModeKind int

const (
	ModeNormal ModeKind = iota
	ModeSearch
	ModeGotoLine
	ModePrompt
)

func (k ModeKind) String() string {
	switch k {
	case ModeSearch:
		return "SEARCH"
	case ModeGotoLine:
		return "GOTO"
	case ModePrompt:
		return "PROMPT"
	}
	return "NORMAL"
}

// Mode is the dispatcher state. Each mode carries only its own data.
type Mode interface {
	Kind() ModeKind
}

type Normal struct{}

// Search holds the pattern typed so far.
type Search struct {
	Pattern string
}

// GotoLine holds the typed target, "line" or "line,col".
type GotoLine struct {
	Input string
}

// Prompt collects a file path.
type Prompt struct {
	Purpose Purpose
	Text    string
}

func (Normal) Kind() ModeKind   { return ModeNormal }
func (Search) Kind() ModeKind   { return ModeSearch }
func (GotoLine) Kind() ModeKind { return ModeGotoLine }
func (Prompt) Kind() ModeKind   { return ModePrompt }

// Dispatcher maps keys to Commands according to the current mode.
type Dispatcher struct {
	mode Mode
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{mode: Normal{}}
}

func (d *Dispatcher) Mode() Mode { return d.mode }

// BeginPrompt switches to Prompt mode with text prefilled. The editor uses
// it when a save has no file name yet.
func (d *Dispatcher) BeginPrompt(purpose Purpose, text string) {
	d.mode = Prompt{Purpose: purpose, Text: text}
}

// Reset returns to Normal mode, dropping any pending input.
func (d *Dispatcher) Reset() {
	d.mode = Normal{}
}

// Dispatch resolves k to at most one Command. It reports false when the key
// only changed mode-internal state or was ignored.
func (d *Dispatcher) Dispatch(k Key) (Command, bool) {
	if k.Kind == KeyCtrl && k.Rune == 'q' {
		d.mode = Normal{}
		return Command{Kind: CmdQuit}, true
	}
	switch m := d.mode.(type) {
	case Search:
		return d.search(m, k)
	case GotoLine:
		return d.gotoLine(m, k)
	case Prompt:
		return d.prompt(m, k)
	default:
		return d.normal(k)
	}
}

func (d *Dispatcher) normal(k Key) (Command, bool) {
	switch k.Kind {
	case KeyRune:
		return Command{Kind: CmdInsertChar, Rune: k.Rune}, true
	case KeyTab:
		return Command{Kind: CmdInsertChar, Rune: '\t'}, true
	case KeyEnter:
		return Command{Kind: CmdInsertNewline}, true
	case KeyBackspace:
		return Command{Kind: CmdDeleteBefore}, true
	case KeyDelete:
		return Command{Kind: CmdDeleteAfter}, true
	case KeyUp:
		return move(buffer.Up, buffer.Grapheme), true
	case KeyDown:
		return move(buffer.Down, buffer.Grapheme), true
	case KeyLeft:
		return move(buffer.Left, buffer.Grapheme), true
	case KeyRight:
		return move(buffer.Right, buffer.Grapheme), true
	case KeyHome:
		return move(buffer.Left, buffer.Line), true
	case KeyEnd:
		return move(buffer.Right, buffer.Line), true
	case KeyPageUp:
		return Command{Kind: CmdMovePage, Dir: buffer.Up}, true
	case KeyPageDown:
		return Command{Kind: CmdMovePage, Dir: buffer.Down}, true
	case KeyCtrlHome:
		return Command{Kind: CmdMoveDocument, Dir: buffer.Up}, true
	case KeyCtrlEnd:
		return Command{Kind: CmdMoveDocument, Dir: buffer.Down}, true
	case KeyEsc:
		return Command{Kind: CmdSearchClear}, true
	case KeyCtrl:
		return d.normalCtrl(k.Rune)
	}
	return Command{}, false
}

func (d *Dispatcher) normalCtrl(letter rune) (Command, bool) {
	switch letter {
	case 'f':
		d.mode = Search{}
		return Command{Kind: CmdSearchStart}, true
	case 'g':
		d.mode = GotoLine{}
		return Command{Kind: CmdGotoStart}, true
	case 'o':
		d.mode = Prompt{Purpose: PurposeOpen}
		return Command{Kind: CmdPromptStart, Purpose: PurposeOpen}, true
	case 's':
		return Command{Kind: CmdSave}, true
	case 'n':
		return Command{Kind: CmdSearchNext}, true
	case 'p':
		return Command{Kind: CmdSearchPrev}, true
	case 'k':
		return Command{Kind: CmdCopyLine}, true
	case 'u':
		return Command{Kind: CmdPaste}, true
	}
	return Command{}, false
}

func (d *Dispatcher) search(m Search, k Key) (Command, bool) {
	switch k.Kind {
	case KeyRune, KeyTab:
		r := k.Rune
		if k.Kind == KeyTab {
			r = '\t'
		}
		m.Pattern += string(r)
		d.mode = m
		return Command{Kind: CmdSearchUpdate, Text: m.Pattern}, true
	case KeyBackspace:
		if m.Pattern == "" {
			return Command{}, false
		}
		m.Pattern = dropLast(m.Pattern)
		d.mode = m
		return Command{Kind: CmdSearchUpdate, Text: m.Pattern}, true
	case KeyEnter:
		d.mode = Normal{}
		return Command{Kind: CmdSearchAccept, Text: m.Pattern}, true
	case KeyEsc:
		d.mode = Normal{}
		return Command{Kind: CmdSearchCancel}, true
	case KeyCtrl:
		switch k.Rune {
		case 'n':
			return Command{Kind: CmdSearchNext}, true
		case 'p':
			return Command{Kind: CmdSearchPrev}, true
		}
	case KeyDown:
		return Command{Kind: CmdSearchNext}, true
	case KeyUp:
		return Command{Kind: CmdSearchPrev}, true
	}
	return Command{}, false
}

func (d *Dispatcher) gotoLine(m GotoLine, k Key) (Command, bool) {
	switch k.Kind {
	case KeyRune:
		switch {
		case k.Rune >= '0' && k.Rune <= '9':
			m.Input += string(k.Rune)
		case k.Rune == ',' && m.Input != "" && !strings.Contains(m.Input, ","):
			m.Input += ","
		default:
			return Command{}, false
		}
		d.mode = m
		return Command{}, false
	case KeyBackspace:
		if m.Input != "" {
			m.Input = m.Input[:len(m.Input)-1]
			d.mode = m
		}
		return Command{}, false
	case KeyEnter:
		d.mode = Normal{}
		return parseGoto(m.Input), true
	case KeyEsc:
		d.mode = Normal{}
		return Command{Kind: CmdGotoCancel}, true
	}
	return Command{}, false
}

func (d *Dispatcher) prompt(m Prompt, k Key) (Command, bool) {
	switch k.Kind {
	case KeyRune:
		m.Text += string(k.Rune)
		d.mode = m
		return Command{}, false
	case KeyBackspace:
		if m.Text != "" {
			m.Text = dropLast(m.Text)
			d.mode = m
		}
		return Command{}, false
	case KeyEnter:
		d.mode = Normal{}
		text := strings.TrimSpace(m.Text)
		if text == "" {
			return Command{Kind: CmdPromptCancel, Purpose: m.Purpose}, true
		}
		return Command{Kind: CmdPromptSubmit, Purpose: m.Purpose, Text: text}, true
	case KeyEsc:
		d.mode = Normal{}
		return Command{Kind: CmdPromptCancel, Purpose: m.Purpose}, true
	}
	return Command{}, false
}

func move(dir buffer.Direction, unit buffer.Unit) Command {
	return Command{Kind: CmdMove, Dir: dir, Unit: unit}
}

// parseGoto converts 1-based "line[,col]" input into a 0-based command.
// Empty input cancels. Numbers too large to parse land past the end and are
// clamped by the buffer.
func parseGoto(in string) Command {
	lineText, colText, hasCol := strings.Cut(in, ",")
	if lineText == "" {
		return Command{Kind: CmdGotoCancel}
	}
	cmd := Command{Kind: CmdGotoLine, Line: atoiSaturating(lineText) - 1}
	if hasCol && colText != "" {
		cmd.Col = atoiSaturating(colText) - 1
		cmd.HasCol = true
	}
	return cmd
}

func atoiSaturating(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return math.MaxInt32
	}
	return n
}

// dropLast removes the final grapheme cluster of s.
func dropLast(s string) string {
	g := grapheme.Split(s)
	if len(g) == 0 {
		return ""
	}
	return grapheme.Join(g[:len(g)-1])
}
