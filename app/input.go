package app

import (
	"lcdmenu/hal"
	"lcdmenu/menu"
)

// buttonLatch remembers presses between menu checks. A press is reported
// once, however many events arrived for it.
type buttonLatch struct {
	pressed [4]bool
}

func (l *buttonLatch) feed(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	if b, ok := keyButton(ev.Code); ok {
		l.pressed[b] = true
	}
}

func (l *buttonLatch) WasPressed(b menu.Button) bool {
	if int(b) >= len(l.pressed) {
		return false
	}
	p := l.pressed[b]
	l.pressed[b] = false
	return p
}

func keyButton(c hal.KeyCode) (menu.Button, bool) {
	switch c {
	case hal.KeyLeft:
		return menu.ButtonLeft, true
	case hal.KeyRight:
		return menu.ButtonRight, true
	case hal.KeyUp:
		return menu.ButtonUp, true
	case hal.KeyDown:
		return menu.ButtonDown, true
	}
	return 0, false
}

// tickClock counts HAL ticks, one per millisecond. Ticks dropped by a full
// channel are not lost since each carries its sequence number.
type tickClock struct {
	now uint64
}

func (c *tickClock) advance(seq uint64) {
	if seq > c.now {
		c.now = seq
	}
}

func (c *tickClock) Millis() uint64 { return c.now }
