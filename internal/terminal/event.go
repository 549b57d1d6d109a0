package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/hyperion-editor/hyperion/internal/input"
)

type EventKind int

const (
	EventKey EventKind = iota
	EventResize
	EventInterrupt
	EventClosed
)

type Event struct {
	Kind EventKind
	Key  input.Key
	Data any // interrupt payload
}

// ReadEvent blocks until the next event the editor cares about. Keys with
// no logical meaning are skipped. A resize resynchronizes the screen before
// it is reported.
func (t *Terminal) ReadEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return Event{Kind: EventClosed}
		case *tcell.EventKey:
			if k, ok := TranslateKey(ev); ok {
				return Event{Kind: EventKey, Key: k}
			}
		case *tcell.EventResize:
			t.screen.Sync()
			return Event{Kind: EventResize}
		case *tcell.EventInterrupt:
			return Event{Kind: EventInterrupt, Data: ev.Data()}
		}
	}
}

// TranslateKey maps a tcell key event to a logical key.
func TranslateKey(ev *tcell.EventKey) (input.Key, bool) {
	mod := ev.Modifiers()
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if mod&tcell.ModCtrl != 0 && r < unicode.MaxASCII && unicode.IsLetter(r) {
			return input.Ctrl(unicode.ToLower(r)), true
		}
		if mod&(tcell.ModAlt|tcell.ModMeta) != 0 {
			return input.Key{}, false
		}
		return input.Rune(r), true
	}
	// Tab, Enter and Backspace share codes with Ctrl+I, Ctrl+M and Ctrl+H,
	// so they are matched first.
	switch ev.Key() {
	case tcell.KeyTab:
		return input.Special(input.KeyTab), true
	case tcell.KeyEnter:
		return input.Special(input.KeyEnter), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.Special(input.KeyBackspace), true
	case tcell.KeyEscape:
		return input.Special(input.KeyEsc), true
	}
	if letter, ok := ctrlLetter(ev.Key()); ok {
		return input.Ctrl(letter), true
	}
	switch ev.Key() {
	case tcell.KeyHome:
		if mod&tcell.ModCtrl != 0 {
			return input.Special(input.KeyCtrlHome), true
		}
		return input.Special(input.KeyHome), true
	case tcell.KeyEnd:
		if mod&tcell.ModCtrl != 0 {
			return input.Special(input.KeyCtrlEnd), true
		}
		return input.Special(input.KeyEnd), true
	}
	if kind, ok := specialKeys[ev.Key()]; ok {
		return input.Special(kind), true
	}
	return input.Key{}, false
}

var specialKeys = map[tcell.Key]input.KeyKind{
	tcell.KeyDelete: input.KeyDelete,
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyPgUp:   input.KeyPageUp,
	tcell.KeyPgDn:   input.KeyPageDown,
}

func ctrlLetter(k tcell.Key) (rune, bool) {
	if k < tcell.KeyCtrlA || k > tcell.KeyCtrlZ {
		return 0, false
	}
	return 'a' + rune(k-tcell.KeyCtrlA), true
}
