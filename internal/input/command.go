package input

import "github.com/hyperion-editor/hyperion/internal/buffer"

type CommandKind int

const (
	CmdInsertChar CommandKind = iota
	CmdInsertNewline
	CmdDeleteBefore
	CmdDeleteAfter
	CmdMove         // Dir, Unit
	CmdMovePage     // Dir
	CmdMoveDocument // Dir
	CmdSave
	CmdQuit
	CmdCopyLine
	CmdPaste

	CmdSearchStart
	CmdSearchUpdate // Text is the whole pattern
	CmdSearchNext
	CmdSearchPrev
	CmdSearchAccept
	CmdSearchCancel
	CmdSearchClear

	CmdGotoStart
	CmdGotoLine // Line and optionally Col, 0-based and unclamped
	CmdGotoCancel

	CmdPromptStart
	CmdPromptSubmit // Purpose, Text
	CmdPromptCancel
)

var commandNames = [...]string{
	CmdInsertChar:    "insert_char",
	CmdInsertNewline: "insert_newline",
	CmdDeleteBefore:  "delete_before",
	CmdDeleteAfter:   "delete_after",
	CmdMove:          "move",
	CmdMovePage:      "move_page",
	CmdMoveDocument:  "move_document",
	CmdSave:          "save",
	CmdQuit:          "quit",
	CmdCopyLine:      "copy_line",
	CmdPaste:         "paste",
	CmdSearchStart:   "search_start",
	CmdSearchUpdate:  "search_update",
	CmdSearchNext:    "search_next",
	CmdSearchPrev:    "search_prev",
	CmdSearchAccept:  "search_accept",
	CmdSearchCancel:  "search_cancel",
	CmdSearchClear:   "search_clear",
	CmdGotoStart:     "goto_start",
	CmdGotoLine:      "goto_line",
	CmdGotoCancel:    "goto_cancel",
	CmdPromptStart:   "prompt_start",
	CmdPromptSubmit:  "prompt_submit",
	CmdPromptCancel:  "prompt_cancel",
}

func (k CommandKind) String() string {
	if int(k) >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return "unknown"
}

// Purpose says what a path prompt is for.
type Purpose int

const (
	PurposeOpen Purpose = iota
	PurposeSaveAs
)

func (p Purpose) String() string {
	if p == PurposeSaveAs {
		return "save as"
	}
	return "open"
}

// Command is one editor action. Only the fields named by Kind are set.
type Command struct {
	Kind    CommandKind
	Rune    rune
	Dir     buffer.Direction
	Unit    buffer.Unit
	Text    string
	Line    int
	Col     int
	HasCol  bool
	Purpose Purpose
}
