package lcd

import (
	"image/color"

	"lcdmenu/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	bezelColor = color.RGBA{R: 0x20, G: 0x22, B: 0x20, A: 0xFF}
	backColor  = color.RGBA{R: 0x9B, G: 0xBC, B: 0x0F, A: 0xFF}
	inkColor   = color.RGBA{R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF}
)

const panelMargin = 8

// Panel renders a Grid onto a framebuffer as a backlit character LCD with an
// underline cursor. It implements the menu display; call Flush to draw.
type Panel struct {
	*Grid
	fb   hal.Framebuffer
	d    fbDisplay
	font tinyfont.Fonter

	cellW, cellH int16
	baseline     int16

	blinkOn  bool
	drawn    uint64
	drawnOn  bool
	hasDrawn bool
}

// NewPanel sizes a rows×cols grid to fill fb inside a fixed bezel.
func NewPanel(fb hal.Framebuffer, rows, cols int) *Panel {
	p := &Panel{
		Grid:    NewGrid(rows, cols),
		fb:      fb,
		d:       fbDisplay{fb: fb},
		font:    &proggy.TinySZ8pt7b,
		blinkOn: true,
	}
	if fb != nil && rows > 0 && cols > 0 {
		p.cellW = int16((fb.Width() - 2*panelMargin) / cols)
		p.cellH = int16((fb.Height() - 2*panelMargin) / rows)
	}
	p.baseline = p.cellH - 3
	return p
}

// SetBlink shows or hides the cursor underline.
func (p *Panel) SetBlink(on bool) { p.blinkOn = on }

// Flush redraws the framebuffer if the grid or cursor changed since the last call.
func (p *Panel) Flush() error {
	if p.fb == nil || p.cellW <= 0 || p.cellH <= 0 {
		return nil
	}
	if p.hasDrawn && p.drawn == p.Version() && p.drawnOn == p.blinkOn {
		return nil
	}

	p.fb.ClearRGB(bezelColor.R, bezelColor.G, bezelColor.B)
	rows, cols := p.Size()
	p.d.FillRectangle(panelMargin, panelMargin, p.cellW*int16(cols), p.cellH*int16(rows), backColor)

	for r := 0; r < rows; r++ {
		y := int16(panelMargin) + int16(r)*p.cellH
		for c := 0; c < cols; c++ {
			ch := p.Cell(r, c)
			if ch == ' ' {
				continue
			}
			x := int16(panelMargin) + int16(c)*p.cellW + 1
			tinyfont.DrawChar(p.d, p.font, x, y+p.baseline, rune(ch), inkColor)
		}
	}

	if p.blinkOn {
		cr, cc := p.Cursor()
		x := int16(panelMargin) + int16(cc)*p.cellW
		y := int16(panelMargin) + int16(cr)*p.cellH + p.cellH - 2
		p.d.FillRectangle(x, y, p.cellW-1, 1, inkColor)
	}

	p.drawn = p.Version()
	p.drawnOn = p.blinkOn
	p.hasDrawn = true
	return p.fb.Present()
}
