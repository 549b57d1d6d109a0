// Package input turns logical key presses into editor Commands. The
// Dispatcher is a small state machine over the Normal, Search, GotoLine and
// Prompt modes; decoding terminal escape sequences happens before a Key
// reaches it.
package input

import "fmt"

type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyCtrl         // Rune holds the lower-case letter
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlHome
	KeyCtrlEnd
)

var keyNames = map[KeyKind]string{
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "del",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyCtrlHome:  "ctrl+home",
	KeyCtrlEnd:   "ctrl+end",
}

// Key is one resolved key press.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Rune returns the key for a typed character.
func Rune(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

// Ctrl returns the key for Ctrl plus a letter.
func Ctrl(letter rune) Key { return Key{Kind: KeyCtrl, Rune: letter} }

// Special returns a key without a rune payload.
func Special(kind KeyKind) Key { return Key{Kind: kind} }

func (k Key) String() string {
	switch k.Kind {
	case KeyRune:
		if k.Rune == ' ' {
			return "space"
		}
		return string(k.Rune)
	case KeyCtrl:
		return "ctrl+" + string(k.Rune)
	}
	if name, ok := keyNames[k.Kind]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k.Kind))
}
