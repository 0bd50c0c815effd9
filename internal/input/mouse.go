package input

// maxSGRLen bounds the search for the terminator of a mouse report.
const maxSGRLen = 32

// SGR button bits.
const (
	sgrButtonMask = 3
	sgrMotion     = 32
	sgrWheel      = 64
	sgrLeft       = 0
)

// parseSGRMouse decodes ESC [ < Btn ; X ; Y M/m. Only the left button and the
// wheel produce events; other buttons are consumed silently.
func parseSGRMouse(data []byte) (n int, ev Event, ok bool) {
	end := 3
	for end < len(data) && end < maxSGRLen {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) {
		if len(data) < maxSGRLen {
			return 0, Event{}, false
		}
		return 3, Event{}, false // Garbage, skip the introducer
	}
	if data[end] != 'M' && data[end] != 'm' {
		return 3, Event{}, false
	}
	n = end + 1

	btn, x, y, valid := parseSGRParams(data[3:end])
	if !valid {
		return n, Event{}, false
	}
	release := data[end] == 'm'

	if btn&sgrWheel != 0 {
		if release {
			return n, Event{}, false
		}
		if btn&1 == 0 {
			return n, keyEvent(KeyZoomIn), true
		}
		return n, keyEvent(KeyZoomOut), true
	}
	if btn&sgrButtonMask != sgrLeft {
		return n, Event{}, false
	}

	p := Pointer{Col: x - 1, Row: y - 1}
	switch {
	case release:
		p.Action = PointerUp
	case btn&sgrMotion != 0:
		p.Action = PointerMove
	default:
		p.Action = PointerDown
	}
	return n, Event{Kind: EventPointer, Pointer: p}, true
}

// parseSGRParams parses "btn;x;y" without allocating.
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0
	digits := 0

	for _, b := range data {
		switch {
		case b == ';':
			if digits == 0 {
				return 0, 0, 0, false
			}
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val = 0
			digits = 0
			if state > 2 {
				return 0, 0, 0, false
			}
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}

	if state != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	return btn, x, val, true
}
