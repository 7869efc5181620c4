//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostButtonKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
}

// poll forwards arrow key edges seen by ebiten since the last frame.
func (k *hostKeyboard) poll() {
	for _, b := range hostButtonKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			k.send(b.code, true)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			k.send(b.code, false)
		}
	}
}
