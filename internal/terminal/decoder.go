package terminal

import (
	"bytes"
	"unicode/utf8"

	"termfolio/internal/event"

	uv "github.com/charmbracelet/ultraviolet"
)

// Decoder turns chunks read from the terminal into raw notifications. It
// keeps the tail of a chunk that ends inside a UTF-8 character or a CSI
// sequence and decodes it together with the next chunk.
type Decoder struct {
	dec     uv.EventDecoder
	pending []byte
}

// Decode decodes chunk, prefixed with whatever the previous call held back.
func (d *Decoder) Decode(chunk []byte) []event.Raw {
	buf := append(d.pending, chunk...)
	keep := incompleteTail(buf)
	d.pending = append([]byte(nil), buf[len(buf)-keep:]...)
	buf = buf[:len(buf)-keep]

	var out []event.Raw
	for len(buf) > 0 {
		n, ev := d.dec.Decode(buf)
		if n <= 0 {
			out = append(out, unknown(buf))
			break
		}
		out = appendEvent(out, ev, buf[:n])
		buf = buf[n:]
	}
	return out
}

// incompleteTail returns how many trailing bytes of buf start a UTF-8
// character or a CSI sequence that has not been completed yet.
func incompleteTail(buf []byte) int {
	if i := bytes.LastIndex(buf, []byte("\x1b[")); i >= 0 {
		complete := false
		for _, b := range buf[i+2:] {
			if b >= 0x40 && b <= 0x7e {
				complete = true
				break
			}
		}
		if !complete {
			return len(buf) - i
		}
	}
	for i := len(buf) - 1; i >= 0 && i >= len(buf)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(buf[i]) {
			continue
		}
		if buf[i] >= utf8.RuneSelf && !utf8.FullRune(buf[i:]) {
			return len(buf) - i
		}
		break
	}
	return 0
}

func appendEvent(out []event.Raw, ev uv.Event, seq []byte) []event.Raw {
	switch e := ev.(type) {
	case nil:
		return out
	case uv.MultiEvent:
		for _, sub := range e {
			out = appendEvent(out, sub, seq)
		}
		return out
	case uv.KeyPressEvent:
		if k, ok := mapKey(uv.Key(e)); ok {
			return append(out, event.Raw{Kind: event.RawKey, Key: k})
		}
	case uv.MouseClickEvent:
		return append(out, mouseRaw(e.Mouse(), event.MousePress))
	case uv.MouseWheelEvent:
		return append(out, mouseRaw(e.Mouse(), event.MousePress))
	case uv.MouseReleaseEvent:
		return append(out, mouseRaw(e.Mouse(), event.MouseRelease))
	case uv.MouseMotionEvent:
		return append(out, mouseRaw(e.Mouse(), event.MouseMotion))
	case uv.FocusEvent:
		return append(out, event.Raw{Kind: event.RawFocus})
	case uv.BlurEvent:
		return append(out, event.Raw{Kind: event.RawBlur})
	}
	return append(out, unknown(seq))
}

var specialKeys = map[rune]event.KeyCode{
	uv.KeyEnter:     event.KeyEnter,
	uv.KeyEscape:    event.KeyEsc,
	uv.KeyBackspace: event.KeyBackspace,
	uv.KeyTab:       event.KeyTab,
	uv.KeyUp:        event.KeyUp,
	uv.KeyDown:      event.KeyDown,
	uv.KeyLeft:      event.KeyLeft,
	uv.KeyRight:     event.KeyRight,
	uv.KeyHome:      event.KeyHome,
	uv.KeyEnd:       event.KeyEnd,
	uv.KeyPgUp:      event.KeyPgUp,
	uv.KeyPgDown:    event.KeyPgDown,
	uv.KeyDelete:    event.KeyDelete,
	uv.KeyInsert:    event.KeyInsert,
	uv.KeyF1:        event.KeyF1,
	uv.KeyF2:        event.KeyF2,
	uv.KeyF3:        event.KeyF3,
	uv.KeyF4:        event.KeyF4,
}

func mapKey(k uv.Key) (event.Key, bool) {
	mod := modifiers(k.Mod)

	if code, ok := specialKeys[k.Code]; ok {
		if code == event.KeyTab && mod.Has(event.ModShift) {
			code = event.KeyBackTab
		}
		return event.Key{Code: code, Mod: mod}, true
	}

	// Shift is already applied to the typed text.
	if r, _ := utf8.DecodeRuneInString(k.Text); k.Text != "" && r != utf8.RuneError {
		return event.Key{Code: event.KeyRune, Rune: r, Mod: mod &^ event.ModShift}, true
	}
	if k.Code > 0 && k.Code < uv.KeyExtended {
		return event.Key{Code: event.KeyRune, Rune: k.Code, Mod: mod}, true
	}
	return event.Key{}, false
}

func modifiers(m uv.KeyMod) event.Modifier {
	var mod event.Modifier
	if m&uv.ModShift != 0 {
		mod |= event.ModShift
	}
	if m&uv.ModAlt != 0 {
		mod |= event.ModAlt
	}
	if m&uv.ModCtrl != 0 {
		mod |= event.ModCtrl
	}
	return mod
}

var mouseButtons = map[uv.MouseButton]event.MouseButton{
	uv.MouseLeft:      event.MouseLeft,
	uv.MouseMiddle:    event.MouseMiddle,
	uv.MouseRight:     event.MouseRight,
	uv.MouseWheelUp:   event.MouseWheelUp,
	uv.MouseWheelDown: event.MouseWheelDown,
}

func mouseRaw(m uv.Mouse, action event.MouseAction) event.Raw {
	return event.Raw{Kind: event.RawMouse, Mouse: event.Mouse{
		X:      m.X,
		Y:      m.Y,
		Button: mouseButtons[m.Button],
		Action: action,
		Mod:    modifiers(m.Mod),
	}}
}

func unknown(seq []byte) event.Raw {
	return event.Raw{Kind: event.RawUnknown, Seq: append([]byte(nil), seq...)}
}
