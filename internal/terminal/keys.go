package terminal

// Key is a logical command decoded from raw terminal input.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyInterrupt
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

type decodeState int

const (
	stateGround decodeState = iota
	stateEsc                // saw ESC
	stateCSI                // saw ESC [
	stateSS3                // saw ESC O (application cursor mode)
)

const (
	byteInterrupt = 0x03
	byteEnter     = '\r'
	byteEsc       = 0x1b
)

// KeyDecoder turns a raw byte stream into logical keys. It keeps its state
// between calls, so an escape sequence split across reads still decodes.
type KeyDecoder struct {
	state decodeState
}

// Feed consumes b and appends every complete key it recognizes to dst.
// Unrecognized bytes and sequences are dropped.
func (d *KeyDecoder) Feed(dst []Key, b []byte) []Key {
	for _, c := range b {
		if k := d.step(c); k != KeyNone {
			dst = append(dst, k)
		}
	}
	return dst
}

func (d *KeyDecoder) step(c byte) Key {
	switch d.state {
	case stateEsc:
		switch c {
		case '[':
			d.state = stateCSI
			return KeyNone
		case 'O':
			d.state = stateSS3
			return KeyNone
		case byteEsc:
			return KeyNone
		}
		// ESC followed by anything else: drop the ESC, decode c normally.
		d.state = stateGround
		return d.step(c)

	case stateCSI:
		// Parameter and intermediate bytes keep the sequence open.
		if c >= 0x20 && c <= 0x3f {
			return KeyNone
		}
		d.state = stateGround
		if c < 0x40 || c > 0x7e {
			// Not a final byte: the sequence was cut short.
			return d.step(c)
		}
		switch c {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		}
		return KeyNone

	case stateSS3:
		d.state = stateGround
		if c < 0x20 {
			return d.step(c)
		}
		switch c {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		}
		return KeyNone
	}

	switch c {
	case byteEsc:
		d.state = stateEsc
	case byteEnter:
		return KeyEnter
	case byteInterrupt:
		return KeyInterrupt
	}
	return KeyNone
}
