// Package menu implements a four-button settings menu for a 16x2 character
// display. Each item edits one stored value; edits are written to storage only
// when the item is left.
package menu

import (
	"fmt"
	"time"
)

// DefaultTimeout is how long the menu waits without input before it returns
// to the first item.
const DefaultTimeout = 15 * time.Second

// Menu dispatches button presses to the active item.
type Menu struct {
	buttons Buttons
	clock   Clock
	log     Logger
	items   []Item

	index   int
	home    bool
	touched uint64
	timeout uint64
}

type Option func(*Menu)

func WithTimeout(d time.Duration) Option {
	return func(m *Menu) {
		if d > 0 {
			m.timeout = uint64(d / time.Millisecond)
		}
	}
}

func WithLogger(l Logger) Option {
	return func(m *Menu) { m.log = l }
}

// New validates the item table and shows the first item.
func New(buttons Buttons, clock Clock, items []Item, opts ...Option) (*Menu, error) {
	if err := ValidateLayout(items, 0); err != nil {
		return nil, err
	}
	m := &Menu{
		buttons: buttons,
		clock:   clock,
		items:   items,
		timeout: uint64(DefaultTimeout / time.Millisecond),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.touched = clock.Millis()
	m.home = true
	m.items[0].Show(false)
	return m, nil
}

// Active returns the index of the item on display.
func (m *Menu) Active() int { return m.index }

func (m *Menu) Item(i int) Item { return m.items[i] }

func (m *Menu) Len() int { return len(m.items) }

// Check polls each button once and forwards presses to the active item.
// It reports whether any button was pressed.
func (m *Menu) Check() bool {
	now := m.clock.Millis()
	pressed := false

	if m.buttons.WasPressed(ButtonLeft) {
		pressed = true
		if !m.items[m.index].Previous() {
			m.switchTo(m.index - 1)
		}
	}
	if m.buttons.WasPressed(ButtonRight) {
		pressed = true
		if !m.items[m.index].Next() {
			m.switchTo(m.index + 1)
		}
	}
	if m.buttons.WasPressed(ButtonUp) {
		pressed = true
		m.items[m.index].Increase()
	}
	if m.buttons.WasPressed(ButtonDown) {
		pressed = true
		m.items[m.index].Decrease()
	}

	if pressed {
		m.touched = now
		m.home = false
		return true
	}

	if !m.home && now >= m.touched && now-m.touched >= m.timeout {
		m.quit()
	}
	return false
}

// switchTo commits the active item and shows item i, entering from the end
// nearest to the item being left. Indexes past either end are ignored.
func (m *Menu) switchTo(i int) {
	if i < 0 || i >= len(m.items) {
		return
	}
	back := i < m.index
	m.items[m.index].Hide()
	m.index = i
	m.items[i].Show(back)
	m.logf("menu: item %d %q", i, m.items[i].Label())
}

// quit commits the active item and returns to the first one.
func (m *Menu) quit() {
	m.items[m.index].Hide()
	m.logf("menu: idle, back to %q", m.items[0].Label())
	m.index = 0
	m.items[0].Show(false)
	m.home = true
}

func (m *Menu) logf(format string, args ...any) {
	if m.log == nil {
		return
	}
	m.log.WriteLineString(fmt.Sprintf(format, args...))
}
