// Package terminal owns the tcell screen for the lifetime of a session and
// converts tcell key events into input.Keys.
package terminal

import (
	"errors"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin is not a tty.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Error is a failure to acquire, drive or release the terminal.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "terminal " + e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Terminal is an initialized screen. Close restores the previous terminal
// mode and is safe to call more than once.
type Terminal struct {
	screen tcell.Screen
	once   sync.Once
}

// Open puts the controlling terminal into raw mode through tcell.
func Open() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, &Error{Op: "open", Err: ErrNotTerminal}
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &Error{Op: "open", Err: err}
	}
	return Attach(s)
}

// Attach initializes an existing screen, such as a simulation screen.
func Attach(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, &Error{Op: "init", Err: err}
	}
	return &Terminal{screen: s}, nil
}

func (t *Terminal) Screen() tcell.Screen { return t.screen }

func (t *Terminal) Close() {
	t.once.Do(t.screen.Fini)
}

// Interrupt wakes ReadEvent from another goroutine.
func (t *Terminal) Interrupt(data any) error {
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
		return &Error{Op: "interrupt", Err: err}
	}
	return nil
}
