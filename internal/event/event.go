// Package event defines the input events consumed by the dashboard and the
// Source that merges terminal input with periodic ticks into one ordered
// stream.
package event

import (
	"strings"
	"time"
	"unicode"
)

// Event is one of Key, Mouse or Tick.
type Event interface {
	isEvent()
}

// KeyCode identifies a key. Character keys use KeyRune and carry the
// character in Key.Rune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyTab
	KeyBackTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
)

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
}

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether every modifier in m2 is held.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// Key is a key press.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

// Char builds an unmodified character key.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Special builds an unmodified non-character key.
func Special(code KeyCode) Key {
	return Key{Code: code}
}

// String returns the key in the "ctrl+alt+x" form used by key bindings.
func (k Key) String() string {
	var b strings.Builder
	if k.Mod.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if k.Mod.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if k.Mod.Has(ModShift) && k.Code != KeyBackTab {
		b.WriteString("shift+")
	}
	if k.Code == KeyRune {
		if k.Rune == ' ' {
			b.WriteString("space")
		} else {
			b.WriteRune(k.Rune)
		}
		return b.String()
	}
	if name, ok := keyNames[k.Code]; ok {
		b.WriteString(name)
		return b.String()
	}
	b.WriteString("unknown")
	return b.String()
}

// Printable reports whether the key types a visible character. Keys held
// with ctrl or alt never do.
func (k Key) Printable() bool {
	if k.Code != KeyRune || k.Mod.Has(ModCtrl) || k.Mod.Has(ModAlt) {
		return false
	}
	return unicode.IsPrint(k.Rune)
}

func (Key) isEvent() {}

// MouseButton identifies the button involved in a mouse event.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction says what the button did.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// Mouse is a mouse event. Coordinates are zero-based cells.
type Mouse struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Mod    Modifier
}

func (Mouse) isEvent() {}

// Tick is the periodic refresh event.
type Tick struct {
	Time time.Time
}

func (Tick) isEvent() {}
