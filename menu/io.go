package menu

// Rows and Columns describe the character display the items render to.
const (
	Rows    = 2
	Columns = 16
)

// Display is a character display addressed by row and column.
//
// Rendering is synchronous; the display keeps whatever was last written.
type Display interface {
	WriteAt(row, col int, s string)
	SetCursor(row, col int)
}

// Button identifies one of the four momentary inputs.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	default:
		return "?"
	}
}

// Buttons reports debounced presses. WasPressed is polled once per button per Check.
type Buttons interface {
	WasPressed(b Button) bool
}

// Storage is a flat byte-addressable non-volatile store.
//
// Addresses are assigned per item by the integrator and must not overlap.
type Storage interface {
	ByteAt(addr int) byte
	SetByte(addr int, b byte)
}

// BlockStorage is implemented by stores that can commit a run of bytes as one
// write. Items use it when available so a multi-byte value costs at most one
// erase per block.
type BlockStorage interface {
	Storage
	SetBytes(addr int, p []byte)
}

func setBytes(s Storage, addr int, p []byte) {
	if bs, ok := s.(BlockStorage); ok {
		bs.SetBytes(addr, p)
		return
	}
	for i, b := range p {
		s.SetByte(addr+i, b)
	}
}

// Clock is a monotonic millisecond tick source.
type Clock interface {
	Millis() uint64
}

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}
