package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrFlashWriteRequiresErase is returned by Flash.WriteAt when a write would
// set a bit that is currently clear.
var ErrFlashWriteRequiresErase = errors.New("flash write requires erase")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// TextDisplay is a character display with its own controller (e.g. HD44780).
type TextDisplay interface {
	WriteAt(row, col int, s string)
	SetCursor(row, col int)
}

// KeyCode is a minimal key identifier.
//
// The menu hardware has four buttons; the host maps them to the arrow keys.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer and/or text display.
// Either may be nil.
type Display interface {
	Framebuffer() Framebuffer
	Text() TextDisplay
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Flash provides raw access to non-volatile memory.
//
// It is intentionally low-level: addresses and erase blocks only.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// Time provides a base tick stream of one tick per millisecond.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the menu and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Flash() Flash
	Time() Time
}
