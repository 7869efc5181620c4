//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// Host framebuffer size: a 16x2 character panel with 8x12 pixel cells and an 8 pixel bezel.
const (
	hostPanelWidth  = 144
	hostPanelHeight = 40
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	flash  Flash
}

// New returns a host HAL implementation.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(hostPanelWidth, hostPanelHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
		flash:  newHostFlash(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Flash() Flash     { return h.flash }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) Text() TextDisplay        { return nil }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
