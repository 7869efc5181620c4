package lcd

import (
	"image/color"

	"lcdmenu/hal"
)

// fbDisplay adapts a hal.Framebuffer to drivers.Displayer for tinyfont.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if buf == nil || ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	hal.PackRGB565(c).Put(buf, off)
}

func (d fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

// FillRectangle fills the clipped rectangle with c.
func (d fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	w, h := d.fb.Width(), d.fb.Height()
	x0 := clamp(int(x), 0, w)
	y0 := clamp(int(y), 0, h)
	x1 := clamp(int(x)+int(width), 0, w)
	y1 := clamp(int(y)+int(height), 0, h)

	pixel := hal.PackRGB565(c)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				continue
			}
			pixel.Put(buf, off)
		}
	}
}
