// Package input turns the raw terminal byte stream into ordered key and pointer events.
package input

import (
	"bufio"
	"sync"
)

// Key is a simulator command bound to a key.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyLaunch
	KeyReset
	KeySlowMotion
	KeyPath
	KeyFollow
	KeyAuthoring
	KeyAngleDown
	KeyAngleUp
	KeySpeedDown
	KeySpeedUp
	KeyGravityDown
	KeyGravityUp
	KeyZoomOut
	KeyZoomIn
	KeyPanLeft
	KeyPanRight
	KeyPanUp
	KeyPanDown
)

// EventKind distinguishes key events from pointer events.
type EventKind int

const (
	EventKey EventKind = iota
	EventPointer
)

// PointerAction is the phase of a pointer gesture.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
)

// Pointer is a left-button mouse report in 0-based terminal cells.
type Pointer struct {
	Action   PointerAction
	Col, Row int
}

// Event is one input event. Key is set for EventKey, Pointer for EventPointer.
type Event struct {
	Kind    EventKind
	Key     Key
	Pointer Pointer
}

// Stream delivers input bytes via a channel. Bytes of an unfinished mouse
// report are held back until the rest arrives.
type Stream struct {
	ch      chan byte
	done    chan struct{}
	stop    sync.Once
	pending []byte
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r fails or, after Close, with its next byte.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 256),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close releases the reader goroutine. Bytes not yet read are dropped.
func (s *Stream) Close() {
	s.stop.Do(func() { close(s.done) })
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the decoded events in arrival order. Once the reader ends a final
// KeyQuit is reported.
func ReadInput(s *Stream) []Event {
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	events, rest := Parse(buf)
	if len(rest) > 0 {
		s.pending = append([]byte(nil), rest...)
	}
	if s.closed {
		events = append(events, Event{Kind: EventKey, Key: KeyQuit})
	}
	return events
}

// Parse decodes buf into events. An incomplete trailing escape sequence is
// returned as rest so the caller can retry once more bytes arrive.
func Parse(buf []byte) (events []Event, rest []byte) {
	for i := 0; i < len(buf); {
		b := buf[i]
		if b != '\x1b' {
			if k := keyForByte(b); k != KeyNone {
				events = append(events, Event{Kind: EventKey, Key: k})
			}
			i++
			continue
		}

		n, ev, ok := parseEscape(buf[i:])
		if n == 0 {
			return events, buf[i:]
		}
		if ok {
			events = append(events, ev)
		}
		i += n
	}
	return events, nil
}

// parseEscape decodes the escape sequence at the start of data. n is the
// number of bytes consumed, zero when the sequence is incomplete.
func parseEscape(data []byte) (n int, ev Event, ok bool) {
	if len(data) < 3 {
		if isPrefix(data, "\x1b[<") {
			return 0, Event{}, false
		}
		return 1, Event{}, false // Lone ESC
	}
	if data[1] != '[' {
		return 1, Event{}, false
	}

	switch data[2] {
	case 'A':
		return 3, keyEvent(KeyPanUp), true
	case 'B':
		return 3, keyEvent(KeyPanDown), true
	case 'C':
		return 3, keyEvent(KeyPanRight), true
	case 'D':
		return 3, keyEvent(KeyPanLeft), true
	case '<':
		return parseSGRMouse(data)
	}
	return 1, Event{}, false
}

func keyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

func isPrefix(data []byte, s string) bool {
	if len(data) > len(s) {
		return false
	}
	return string(data) == s[:len(data)]
}

// keyForByte maps a single byte to its command.
func keyForByte(b byte) Key {
	switch b {
	case 'q', 'Q', '\x03':
		return KeyQuit
	case ' ', '\r', '\n':
		return KeyLaunch
	case 'r', 'R':
		return KeyReset
	case 'm', 'M':
		return KeySlowMotion
	case 'p', 'P':
		return KeyPath
	case 'f', 'F':
		return KeyFollow
	case 'b', 'B':
		return KeyAuthoring
	case 'a', 'A':
		return KeyAngleDown
	case 'd', 'D':
		return KeyAngleUp
	case 's', 'S':
		return KeySpeedDown
	case 'w', 'W':
		return KeySpeedUp
	case '[':
		return KeyGravityDown
	case ']':
		return KeyGravityUp
	case '-', '_':
		return KeyZoomOut
	case '=', '+':
		return KeyZoomIn
	}
	return KeyNone
}
