//go:build tinygo && baremetal

package hal

// stubFramebuffer stands in on boards whose display is a character LCD.
type stubFramebuffer struct{}

func (f *stubFramebuffer) Width() int             { return 0 }
func (f *stubFramebuffer) Height() int            { return 0 }
func (f *stubFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *stubFramebuffer) StrideBytes() int       { return 0 }
func (f *stubFramebuffer) Buffer() []byte         { return nil }
func (f *stubFramebuffer) ClearRGB(r, g, b uint8) {}
func (f *stubFramebuffer) Present() error         { return ErrNotImplemented }
