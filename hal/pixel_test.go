package hal

import (
	"image/color"
	"testing"
)

func TestRGB565(t *testing.T) {
	tests := []struct {
		in   color.RGBA
		want RGB565
	}{
		{color.RGBA{A: 0xFF}, 0x0000},
		{color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, 0xFFFF},
		{color.RGBA{R: 0xFF}, 0xF800},
		{color.RGBA{G: 0xFF}, 0x07E0},
		{color.RGBA{B: 0xFF}, 0x001F},
	}
	for _, tt := range tests {
		got := PackRGB565(tt.in)
		if got != tt.want {
			t.Fatalf("PackRGB565(%v) = %#04x, want %#04x", tt.in, got, tt.want)
		}
		back := got.RGBA()
		if back.R != tt.in.R || back.G != tt.in.G || back.B != tt.in.B || back.A != 0xFF {
			t.Fatalf("RGBA() = %v, want %v", back, tt.in)
		}
	}

	buf := make([]byte, 4)
	RGB565(0xABCD).Put(buf, 2)
	if buf[2] != 0xCD || buf[3] != 0xAB {
		t.Fatalf("Put() = % x, want little-endian", buf)
	}
	if got := PixelAt(buf, 2); got != 0xABCD {
		t.Fatalf("PixelAt() = %#04x, want 0xabcd", got)
	}
}
