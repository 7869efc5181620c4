package menu

import (
	"encoding/binary"
	"math"
)

// NumberSize is the number of storage bytes used by a 32-bit value.
const NumberSize = 4

// Number is a 32-bit value stored little-endian at a fixed address.
type Number struct {
	store Storage
	addr  int
}

func NewNumber(store Storage, addr int) Number {
	return Number{store: store, addr: addr}
}

func (n Number) Addr() int { return n.addr }

func (n Number) Uint32() uint32 { return n.bits() }

func (n Number) Float32() float32 { return math.Float32frombits(n.bits()) }

func (n Number) SetUint32(v uint32) { n.setBits(v) }

func (n Number) SetFloat32(v float32) { n.setBits(math.Float32bits(v)) }

func (n Number) bits() uint32 {
	var b [NumberSize]byte
	for i := range b {
		b[i] = n.store.ByteAt(n.addr + i)
	}
	return binary.LittleEndian.Uint32(b[:])
}

func (n Number) setBits(v uint32) {
	var b [NumberSize]byte
	binary.LittleEndian.PutUint32(b[:], v)
	setBytes(n.store, n.addr, b[:])
}
