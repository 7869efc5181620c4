// Package app wires a HAL to the settings menu.
package app

import (
	"fmt"
	"time"

	"lcdmenu/config"
	"lcdmenu/eeprom"
	"lcdmenu/hal"
	"lcdmenu/internal/buildinfo"
	"lcdmenu/lcd"
	"lcdmenu/menu"
)

const (
	// Run polls the menu at this interval.
	pollInterval = 5 * time.Millisecond
	// The framebuffer cursor toggles every half period.
	cursorBlinkMillis = 500
)

type Config struct {
	// Table is the menu to run. A table without items selects config.Default.
	Table config.Table
}

type system struct {
	log     hal.Logger
	menu    *menu.Menu
	panel   *lcd.Panel
	buttons buttonLatch
	clock   tickClock
	keys    <-chan hal.KeyEvent
	ticks   <-chan uint64
}

// New builds the menu on h and returns the step function that drives it.
// Each step drains pending key and tick events, runs one menu check and
// redraws the framebuffer panel if there is one.
func New(h hal.HAL, cfg Config) (func() error, error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	return guard(h, s.step), nil
}

// Run starts the menu with the built-in table and polls it forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	step, err := New(h, Config{})
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("app: " + err.Error())
		}
		select {}
	}
	t := time.NewTicker(pollInterval)
	defer t.Stop()
	for range t.C {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("app: " + err.Error())
			}
		}
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	tab := cfg.Table
	if len(tab.Items) == 0 {
		tab = config.Default()
	}
	if err := tab.Validate(); err != nil {
		return nil, fmt.Errorf("menu table: %w", err)
	}

	s := &system{log: h.Logger()}

	bootStep(h, "storage")
	store := openStorage(h.Flash(), tab.Region, s.log)

	bootStep(h, "display")
	disp, panel := openDisplay(h.Display())
	s.panel = panel

	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
	}
	if ht := h.Time(); ht != nil {
		s.ticks = ht.Ticks()
	}

	bootStep(h, "menu")
	items, err := tab.Build(disp, store)
	if err != nil {
		return nil, fmt.Errorf("menu table: %w", err)
	}
	opts := tab.Options()
	if s.log != nil {
		opts = append(opts, menu.WithLogger(s.log))
	}
	m, err := menu.New(&s.buttons, &s.clock, items, opts...)
	if err != nil {
		return nil, err
	}
	s.menu = m
	s.logf("app: lcdmenu %s, %d items, storage %d bytes at %#x", buildinfo.Full(), len(items), tab.Region.Size, tab.Region.Base)
	return s, nil
}

// openStorage mirrors the settings region of f. Without usable flash the
// settings live in RAM and are lost on reset.
func openStorage(f hal.Flash, r config.Region, log hal.Logger) menu.Storage {
	if f != nil {
		st, err := eeprom.Open(f, r.Base, r.Size, log)
		if err == nil {
			return st
		}
		if log != nil {
			log.WriteLineString("app: " + err.Error() + "; settings will not persist")
		}
	}
	return eeprom.NewRAM(int(r.Size))
}

// openDisplay prefers a character LCD and falls back to drawing one on the
// framebuffer. The returned panel is nil unless the framebuffer is used.
func openDisplay(d hal.Display) (menu.Display, *lcd.Panel) {
	if d != nil {
		if t := d.Text(); t != nil {
			return t, nil
		}
		if fb := d.Framebuffer(); fb != nil {
			p := lcd.NewPanel(fb, menu.Rows, menu.Columns)
			return p, p
		}
	}
	return lcd.NewGrid(menu.Rows, menu.Columns), nil
}

func (s *system) step() error {
	s.drainTicks()
	s.drainKeys()
	s.menu.Check()
	if s.panel == nil {
		return nil
	}
	s.panel.SetBlink(s.clock.Millis()/cursorBlinkMillis%2 == 0)
	return s.panel.Flush()
}

func (s *system) drainTicks() {
	for {
		select {
		case seq, ok := <-s.ticks:
			if !ok {
				s.ticks = nil
				return
			}
			s.clock.advance(seq)
		default:
			return
		}
	}
}

func (s *system) drainKeys() {
	for {
		select {
		case ev, ok := <-s.keys:
			if !ok {
				s.keys = nil
				return
			}
			s.buttons.feed(ev)
		default:
			return
		}
	}
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
