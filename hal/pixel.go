package hal

import "image/color"

// RGB565 is one pixel in PixelFormatRGB565, stored little-endian in framebuffers.
type RGB565 uint16

// PackRGB565 drops the low bits of each channel of c. Alpha is ignored.
func PackRGB565(c color.RGBA) RGB565 {
	return RGB565(uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3))
}

// RGBA expands p back to 8 bits per channel, mapping full scale to 0xFF.
func (p RGB565) RGBA() color.RGBA {
	r := uint16(p>>11) & 0x1F
	g := uint16(p>>5) & 0x3F
	b := uint16(p) & 0x1F
	return color.RGBA{
		R: uint8(r * 255 / 31),
		G: uint8(g * 255 / 63),
		B: uint8(b * 255 / 31),
		A: 0xFF,
	}
}

// Put stores p at buf[off:off+2].
func (p RGB565) Put(buf []byte, off int) {
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// PixelAt reads the pixel stored at buf[off:off+2].
func PixelAt(buf []byte, off int) RGB565 {
	return RGB565(buf[off]) | RGB565(buf[off+1])<<8
}
