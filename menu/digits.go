package menu

import "math"

// Exponent limits for float items. The exponent is shown as a single digit.
const (
	MinExponent = -9
	MaxExponent = 9
)

// Digit count limits. Integers must fit a uint32. Floats are stored as
// float32, which round-trips at most 6 significant decimal digits.
const (
	MaxIntDigits   = 9
	MaxFloatDigits = 6
)

// digitBuffer holds decimal digits, most significant first.
type digitBuffer []int8

func (d digitBuffer) fill(v int8) {
	for i := range d {
		d[i] = v
	}
}

func (d digitBuffer) isZero() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

// setUint left-pads v with zeros. Values wider than the buffer clamp to all nines.
func (d digitBuffer) setUint(v uint64) {
	if max := pow10u(len(d)) - 1; v > max {
		v = max
	}
	for i := len(d) - 1; i >= 0; i-- {
		d[i] = int8(v % 10)
		v /= 10
	}
}

func (d digitBuffer) uint() uint64 {
	var v uint64
	for _, x := range d {
		v = v*10 + uint64(x)
	}
	return v
}

// add adds delta (±1) to digit s and carries toward index 0.
// It returns +1 if a carry left the most significant digit, -1 for a borrow
// and 0 otherwise. The buffer holds the wrapped digits in both overflow cases.
func (d digitBuffer) add(s int, delta int8) int {
	d[s] += delta
	for i := s; i >= 0; i-- {
		switch {
		case d[i] > 9:
			d[i] -= 10
			if i == 0 {
				return 1
			}
			d[i-1]++
		case d[i] < 0:
			d[i] += 10
			if i == 0 {
				return -1
			}
			d[i-1]--
		default:
			return 0
		}
	}
	return 0
}

// shiftRight moves every digit one place toward less significant and puts lead in front.
func (d digitBuffer) shiftRight(lead int8) {
	copy(d[1:], d[:len(d)-1])
	d[0] = lead
}

// shiftLeft moves every digit one place toward more significant.
func (d digitBuffer) shiftLeft() {
	copy(d, d[1:])
	d[len(d)-1] = 0
}

func pow10u(n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// intDigits edits an unsigned integer in place. Overflow clamps, it never wraps.
type intDigits struct {
	d digitBuffer
}

func newIntDigits(n int) intDigits {
	return intDigits{d: make(digitBuffer, n)}
}

func (e *intDigits) explode(v uint32) { e.d.setUint(uint64(v)) }

func (e *intDigits) value() uint32 { return uint32(e.d.uint()) }

func (e *intDigits) add(s int, delta int8) {
	switch e.d.add(s, delta) {
	case 1:
		e.d.fill(9)
	case -1:
		e.d.fill(0)
	}
}

// floatDigits edits an unsigned float as digits × 10^(exp-i).
type floatDigits struct {
	d   digitBuffer
	exp int
}

func newFloatDigits(n int) floatDigits {
	return floatDigits{d: make(digitBuffer, n)}
}

// explode writes v in normalized scientific form.
// Zero, negative and NaN values become zero; magnitudes beyond the
// exponent range clamp to the largest representable value.
func (e *floatDigits) explode(v float32) {
	f := float64(v)
	n := len(e.d)
	e.d.fill(0)
	e.exp = 0
	if !(f > 0) {
		return
	}
	if f >= math.Pow10(MaxExponent+1) {
		e.saturate()
		return
	}

	exp := 0
	for exp < MaxExponent && f >= math.Pow10(exp+1) {
		exp++
	}
	for exp > MinExponent && f < math.Pow10(exp) {
		exp--
	}

	scaled := math.Round(scale(f, n-1-exp))
	if scaled >= math.Pow10(n) {
		// 9.99..95 rounds up into the next decade.
		if exp == MaxExponent {
			e.saturate()
			return
		}
		exp++
		scaled = math.Round(scale(f, n-1-exp))
	}
	e.exp = exp
	e.d.setUint(uint64(scaled))
}

func (e *floatDigits) saturate() {
	e.d.fill(9)
	e.exp = MaxExponent
}

func (e *floatDigits) value() float32 {
	return float32(scale(float64(e.d.uint()), e.exp-(len(e.d)-1)))
}

func (e *floatDigits) add(s int, delta int8) {
	switch e.d.add(s, delta) {
	case 1:
		if e.exp >= MaxExponent {
			e.saturate()
			return
		}
		e.d.shiftRight(1)
		e.exp++
	case -1:
		e.d.fill(0)
		return
	}
	e.normalize()
}

// normalize shifts out leading zeros of a non-zero value, down to MinExponent.
func (e *floatDigits) normalize() {
	if e.d.isZero() {
		return
	}
	for e.d[0] == 0 && e.exp > MinExponent {
		e.d.shiftLeft()
		e.exp--
	}
}

// scale returns f·10^k. Negative k divides so that exact powers stay exact.
func scale(f float64, k int) float64 {
	if k >= 0 {
		return f * math.Pow10(k)
	}
	return f / math.Pow10(-k)
}
