//go:build !tinygo && cgo

package hal

import (
	"image"

	"lcdmenu/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

const hostWindowScale = 4

// RunWindow starts a desktop window that displays the framebuffer and forwards
// the arrow keys as buttons. It blocks until the window closes.
func RunWindow(newApp func(HAL) (func() error, error)) error {
	h := New().(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("lcdmenu (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*hostWindowScale, h.fb.height*hostWindowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	if fb.takeFrame(g.img.Pix) {
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
