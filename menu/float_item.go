package menu

import (
	"fmt"
	"math"
)

// FloatItem edits an unsigned float as a mantissa of digits and a decimal exponent.
//
// The value row reads "d.ddde+x"; the cursor skips the decimal point.
type FloatItem struct {
	section
	num       Number
	digits    floatDigits
	shownBits uint32
	line      []byte
}

// NewFloat returns a float item with the given mantissa digits stored at addr.
func NewFloat(disp Display, store Storage, label string, addr, digits int) *FloatItem {
	if digits < 1 || digits > MaxFloatDigits {
		panic(fmt.Sprintf("menu: %q: %d digits out of range", label, digits))
	}
	it := &FloatItem{
		section: section{disp: disp, label: label, sections: digits},
		num:     NewNumber(store, addr),
		digits:  newFloatDigits(digits),
		line:    make([]byte, 0, digits+4),
	}
	it.digits.explode(it.num.Float32())
	it.shownBits = math.Float32bits(it.digits.value())
	return it
}

func (it *FloatItem) Extent() Extent { return Extent{Addr: it.num.Addr(), Size: NumberSize} }

// Value returns the value currently held by the editor.
func (it *FloatItem) Value() float32 { return it.digits.value() }

// Exponent returns the power of ten of the leading digit.
func (it *FloatItem) Exponent() int { return it.digits.exp }

// SetValue rounds v to the item's precision and stores it immediately.
func (it *FloatItem) SetValue(v float32) {
	it.digits.explode(v)
	v = it.digits.value()
	it.shownBits = math.Float32bits(v)
	it.num.SetFloat32(v)
}

func (it *FloatItem) Show(endFirst bool) {
	it.digits.explode(it.num.Float32())
	it.shownBits = math.Float32bits(it.digits.value())
	it.start(endFirst)
	it.render()
}

func (it *FloatItem) Hide() {
	v := it.digits.value()
	if b := math.Float32bits(v); b != it.shownBits {
		it.num.SetFloat32(v)
		it.shownBits = b
	}
}

func (it *FloatItem) Next() bool {
	if !it.move(1) {
		return false
	}
	it.render()
	return true
}

func (it *FloatItem) Previous() bool {
	if !it.move(-1) {
		return false
	}
	it.render()
	return true
}

func (it *FloatItem) Increase() {
	it.digits.add(it.s, 1)
	it.render()
}

func (it *FloatItem) Decrease() {
	it.digits.add(it.s, -1)
	it.render()
}

func (it *FloatItem) PlaceCursor() {
	col := it.s
	if col > 0 {
		col++
	}
	it.disp.SetCursor(1, col)
}

func (it *FloatItem) render() {
	line := it.line[:0]
	for i, d := range it.digits.d {
		line = append(line, '0'+byte(d))
		if i == 0 && len(it.digits.d) > 1 {
			line = append(line, '.')
		}
	}
	exp := it.digits.exp
	sign := byte('+')
	if exp < 0 {
		sign = '-'
		exp = -exp
	}
	line = append(line, 'e', sign, '0'+byte(exp))
	it.line = line

	writeLine(it.disp, 0, it.label)
	writeLine(it.disp, 1, string(line))
	it.PlaceCursor()
}
