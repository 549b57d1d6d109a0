// Package editor is one editing session: a buffer, its file, the search
// state and the viewport, driven by key commands and drawn on a tcell screen.
package editor

import (
	"errors"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/hyperion-editor/hyperion/internal/buffer"
	"github.com/hyperion-editor/hyperion/internal/config"
	"github.com/hyperion-editor/hyperion/internal/input"
	"github.com/hyperion-editor/hyperion/internal/logger"
	"github.com/hyperion-editor/hyperion/internal/search"
	"github.com/hyperion-editor/hyperion/internal/storage"
	"github.com/hyperion-editor/hyperion/internal/view"
)

// Store reads and writes whole documents.
type Store interface {
	Load(path string) (string, error)
	Save(path, text string) error
}

type Clipboard interface {
	Copy(text string)
	Paste() string
}

type Editor struct {
	buf    *buffer.Buffer
	search *search.Engine
	disp   *input.Dispatcher
	vp     view.Viewport
	opts   view.Options

	store Store
	clip  Clipboard

	filename     string
	savedVersion uint64

	statusMessage string
	confirmQuit   bool
	quitArmed     bool
	searchOrigin  buffer.Pos

	styles styles
}

type styles struct {
	main             tcell.Style
	currentLine      tcell.Style
	status           tcell.Style
	message          tcell.Style
	lineNumber       tcell.Style
	lineNumberActive tcell.Style
	match            tcell.Style
	currentMatch     tcell.Style
}

func New(cfg config.Config, store Store, clip Clipboard) *Editor {
	e := &Editor{
		buf:    buffer.New(""),
		search: search.New(),
		disp:   input.NewDispatcher(),
		opts: view.Options{
			TabWidth:             max(cfg.Editor.TabWidth, 1),
			LineNumbers:          cfg.Editor.LineNumbersEnabled(),
			HighlightCurrentLine: cfg.Editor.HighlightCurrentLine,
		},
		store:       store,
		clip:        clip,
		confirmQuit: cfg.Editor.ConfirmQuit,
		styles:      newStyles(cfg.Theme),
	}
	e.savedVersion = e.buf.Version()
	return e
}

func newStyles(t config.Theme) styles {
	mainFg := parseColor(t.Foreground, tcell.ColorWhite)
	mainBg := parseColor(t.Background, tcell.ColorBlack)
	lineBg := parseColor(t.CurrentLineBackground, mainBg)
	statusFg := parseColor(t.StatuslineForeground, tcell.ColorBlack)
	statusBg := parseColor(t.StatuslineBackground, tcell.ColorGray)
	messageFg := parseColor(t.MessageForeground, mainFg)
	messageBg := parseColor(t.MessageBackground, mainBg)
	lineNumberFg := parseColor(t.LineNumberForeground, tcell.ColorGray)
	lineNumberActiveFg := parseColor(t.LineNumberActiveForeground, mainFg)
	matchFg := parseColor(t.SearchMatchForeground, tcell.ColorBlack)
	matchBg := parseColor(t.SearchMatchBackground, tcell.ColorYellow)
	currentFg := parseColor(t.SearchCurrentForeground, tcell.ColorBlack)
	currentBg := parseColor(t.SearchCurrentBackground, tcell.ColorOrange)
	return styles{
		main:             tcell.StyleDefault.Foreground(mainFg).Background(mainBg),
		currentLine:      tcell.StyleDefault.Foreground(mainFg).Background(lineBg),
		status:           tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
		message:          tcell.StyleDefault.Foreground(messageFg).Background(messageBg),
		lineNumber:       tcell.StyleDefault.Foreground(lineNumberFg).Background(mainBg),
		lineNumberActive: tcell.StyleDefault.Foreground(lineNumberActiveFg).Background(mainBg),
		match:            tcell.StyleDefault.Foreground(matchFg).Background(matchBg),
		currentMatch:     tcell.StyleDefault.Foreground(currentFg).Background(currentBg).Bold(true),
	}
}

// OpenFile replaces the buffer with the contents of path. A path that does
// not exist yet opens an empty buffer under that name. On any other error
// the current buffer is left untouched.
func (e *Editor) OpenFile(path string) error {
	text, err := e.store.Load(path)
	isNew := storage.IsNotExist(err)
	if err != nil && !isNew {
		logger.Warn("open failed", "path", path, "err", err)
		return err
	}
	e.buf.Load(text)
	if isNew {
		e.setStatus("New file")
	} else {
		e.setStatus("Read " + countOf(e.buf.LineCount(), "line"))
	}
	e.filename = path
	e.savedVersion = e.buf.Version()
	e.search.Reset()
	e.vp.Top, e.vp.Left = 0, 0
	e.quitArmed = false
	logger.Info("opened file", "path", path, "lines", e.buf.LineCount())
	return nil
}

// Save writes the buffer to path, or to the current file name when path is
// empty. The buffer is marked clean only when the write succeeds.
func (e *Editor) Save(path string) error {
	if path == "" {
		path = e.filename
	}
	if path == "" {
		return errNoFileName
	}
	if err := e.store.Save(path, e.buf.Serialize()); err != nil {
		logger.Warn("save failed", "path", path, "err", err)
		return err
	}
	e.filename = path
	e.savedVersion = e.buf.Version()
	e.quitArmed = false
	logger.Info("saved file", "path", path, "lines", e.buf.LineCount())
	return nil
}

var errNoFileName = errors.New("no file name")

func (e *Editor) Content() string { return e.buf.Serialize() }
func (e *Editor) Cursor() buffer.Pos { return e.buf.Cursor() }
func (e *Editor) Filename() string { return e.filename }
func (e *Editor) Dirty() bool { return e.buf.Version() != e.savedVersion }
func (e *Editor) Mode() input.ModeKind { return e.disp.Mode().Kind() }
func (e *Editor) StatusMessage() string { return e.statusMessage }
func (e *Editor) Viewport() view.Viewport { return e.vp }

// Matches returns the live search matches and the index of the current one.
func (e *Editor) Matches() ([]search.Match, int) {
	return e.search.Matches(), e.search.CurrentIndex()
}

func (e *Editor) SetStatusMessage(msg string) { e.setStatus(msg) }

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
}

func (e *Editor) displayName() string {
	if e.filename == "" {
		return "[No Name]"
	}
	return filepath.Base(e.filename)
}
