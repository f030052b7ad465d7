package event

import "time"

// RawKind classifies a notification from the input source.
type RawKind int

const (
	RawUnknown RawKind = iota
	RawKey
	RawMouse
	RawFocus
	RawBlur
	RawResize
)

func (k RawKind) String() string {
	switch k {
	case RawKey:
		return "key"
	case RawMouse:
		return "mouse"
	case RawFocus:
		return "focus"
	case RawBlur:
		return "blur"
	case RawResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Raw is one undecorated notification read from the terminal. Only the
// fields matching Kind are meaningful.
type Raw struct {
	Kind   RawKind
	Key    Key
	Mouse  Mouse
	Width  int
	Height int
	// Seq holds the bytes of sequences the decoder did not recognise.
	Seq []byte
}

// InputSource is the terminal input collaborator. Poll waits up to timeout
// for a notification to become available; once it reports true, Read
// returns that notification without blocking.
type InputSource interface {
	Poll(timeout time.Duration) (bool, error)
	Read() (Raw, error)
}

// Classify maps a raw notification to an Event. Kinds the dashboard does
// not consume report false.
func Classify(r Raw) (Event, bool) {
	switch r.Kind {
	case RawKey:
		return r.Key, true
	case RawMouse:
		return r.Mouse, true
	default:
		return nil, false
	}
}
