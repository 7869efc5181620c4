//go:build tinygo && bootdebug

package app

import "lcdmenu/hal"

func bootScreen(h hal.HAL, msg string) {
	d := h.Display()
	if d == nil {
		return
	}
	t := d.Text()
	if t == nil {
		return
	}
	t.WriteAt(0, 0, "lcdmenu boot    ")
	t.WriteAt(1, 0, fitLine(msg))
}
