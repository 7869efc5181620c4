//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

const (
	buttonPollInterval = 5 * time.Millisecond
	// A level must hold for this many polls before it counts.
	buttonStablePolls = 4
)

type buttonPin struct {
	pin  machine.Pin
	code KeyCode

	down   bool
	stable uint8
}

// buttonKeyboard turns debounced active-low button pins into key events.
type buttonKeyboard struct {
	ch   chan KeyEvent
	pins []buttonPin
}

func newButtonKeyboard(pins []buttonPin) *buttonKeyboard {
	k := &buttonKeyboard{ch: make(chan KeyEvent, 16), pins: pins}
	for i := range k.pins {
		k.pins[i].pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	go k.run()
	return k
}

func (k *buttonKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *buttonKeyboard) run() {
	ticker := time.NewTicker(buttonPollInterval)
	defer ticker.Stop()
	for range ticker.C {
		for i := range k.pins {
			k.poll(&k.pins[i])
		}
	}
}

func (k *buttonKeyboard) poll(b *buttonPin) {
	down := !b.pin.Get()
	if down == b.down {
		b.stable = 0
		return
	}
	b.stable++
	if b.stable < buttonStablePolls {
		return
	}
	b.down = down
	b.stable = 0
	select {
	case k.ch <- KeyEvent{Code: b.code, Press: down}:
	default:
	}
}
