package menu

import "fmt"

// IntItem edits an unsigned integer digit by digit.
type IntItem struct {
	section
	num    Number
	digits intDigits
	shown  uint32
	line   []byte
}

// NewInt returns an integer item with the given number of digits stored at addr.
func NewInt(disp Display, store Storage, label string, addr, digits int) *IntItem {
	if digits < 1 || digits > MaxIntDigits {
		panic(fmt.Sprintf("menu: %q: %d digits out of range", label, digits))
	}
	it := &IntItem{
		section: section{disp: disp, label: label, sections: digits},
		num:     NewNumber(store, addr),
		digits:  newIntDigits(digits),
		line:    make([]byte, digits),
	}
	it.digits.explode(it.num.Uint32())
	it.shown = it.digits.value()
	return it
}

func (it *IntItem) Extent() Extent { return Extent{Addr: it.num.Addr(), Size: NumberSize} }

// Value returns the value currently held by the editor.
func (it *IntItem) Value() uint32 { return it.digits.value() }

// SetValue clamps v to the digit count and stores it immediately.
func (it *IntItem) SetValue(v uint32) {
	it.digits.explode(v)
	it.shown = it.digits.value()
	it.num.SetUint32(it.shown)
}

func (it *IntItem) Show(endFirst bool) {
	it.digits.explode(it.num.Uint32())
	it.shown = it.digits.value()
	it.start(endFirst)
	it.render()
}

func (it *IntItem) Hide() {
	if v := it.digits.value(); v != it.shown {
		it.num.SetUint32(v)
		it.shown = v
	}
}

func (it *IntItem) Next() bool {
	if !it.move(1) {
		return false
	}
	it.render()
	return true
}

func (it *IntItem) Previous() bool {
	if !it.move(-1) {
		return false
	}
	it.render()
	return true
}

func (it *IntItem) Increase() {
	it.digits.add(it.s, 1)
	it.render()
}

func (it *IntItem) Decrease() {
	it.digits.add(it.s, -1)
	it.render()
}

func (it *IntItem) PlaceCursor() { it.disp.SetCursor(1, it.s) }

func (it *IntItem) render() {
	for i, d := range it.digits.d {
		it.line[i] = '0' + byte(d)
	}
	writeLine(it.disp, 0, it.label)
	writeLine(it.disp, 1, string(it.line))
	it.PlaceCursor()
}
