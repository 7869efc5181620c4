//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostFramebuffer is drawn by the app goroutine and read by the window. Present
// marks a frame ready; the window copies it out only when one is.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte
	ready  bool
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*2),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.width * 2 }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.ready = true
	f.frames++
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := PackRGB565(color.RGBA{R: r, G: g, B: b})
	for i := 0; i+1 < len(f.buf); i += 2 {
		p.Put(f.buf, i)
	}
}

// takeFrame expands the last presented frame into dst as RGBA and reports
// whether there was a new one.
func (f *hostFramebuffer) takeFrame(dst []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ready {
		return false
	}
	f.ready = false
	for i := 0; i+1 < len(f.buf) && i*2+3 < len(dst); i += 2 {
		c := PixelAt(f.buf, i).RGBA()
		j := i * 2
		dst[j], dst[j+1], dst[j+2], dst[j+3] = c.R, c.G, c.B, c.A
	}
	return true
}
