// Package eeprom emulates byte-addressable EEPROM on top of NOR flash.
//
// The region is mirrored in RAM. A write that only clears bits is programmed in
// place; anything else erases and reprograms the containing block.
package eeprom

import (
	"errors"
	"fmt"

	"lcdmenu/hal"
)

var ErrRegion = errors.New("eeprom: bad region")

// Store is a flash-backed byte store. It has no error channel per access;
// the last failure is kept in Err and logged.
type Store struct {
	flash hal.Flash
	log   hal.Logger
	base  uint32
	block uint32
	mem   []byte
	one   [1]byte
	err   error

	programs int
	erases   int
}

// Open mirrors size bytes of f starting at base. Both must be multiples of the
// flash erase block. log may be nil.
func Open(f hal.Flash, base, size uint32, log hal.Logger) (*Store, error) {
	bs := f.EraseBlockBytes()
	if bs == 0 {
		return nil, fmt.Errorf("%w: flash has no erase blocks", ErrRegion)
	}
	if size == 0 || base%bs != 0 || size%bs != 0 {
		return nil, fmt.Errorf("%w: base=%d size=%d erase=%d", ErrRegion, base, size, bs)
	}
	if uint64(base)+uint64(size) > uint64(f.SizeBytes()) {
		return nil, fmt.Errorf("%w: base=%d size=%d flash=%d", ErrRegion, base, size, f.SizeBytes())
	}

	s := &Store{
		flash: f,
		log:   log,
		base:  base,
		block: bs,
		mem:   make([]byte, size),
	}
	if _, err := f.ReadAt(s.mem, base); err != nil {
		return nil, fmt.Errorf("eeprom read at %d: %w", base, err)
	}
	return s, nil
}

// Size returns the number of addressable bytes.
func (s *Store) Size() int { return len(s.mem) }

// Err returns the most recent flash or addressing failure.
func (s *Store) Err() error { return s.err }

// Stats returns how many in-place programs and block erases were issued.
func (s *Store) Stats() (programs, erases int) { return s.programs, s.erases }

func (s *Store) ByteAt(addr int) byte {
	if addr < 0 || addr >= len(s.mem) {
		s.fail(fmt.Errorf("%w: read at %d", ErrRegion, addr))
		return 0xFF
	}
	return s.mem[addr]
}

func (s *Store) SetByte(addr int, b byte) {
	s.one[0] = b
	s.SetBytes(addr, s.one[:])
}

// SetBytes stores p at addr. Each touched erase block is written once: bytes
// that only clear bits are programmed in place, otherwise the block is erased
// and reprogrammed from the mirror.
func (s *Store) SetBytes(addr int, p []byte) {
	if addr < 0 || addr+len(p) > len(s.mem) {
		s.fail(fmt.Errorf("%w: write at %d+%d", ErrRegion, addr, len(p)))
		return
	}
	for len(p) > 0 {
		start := addr / int(s.block) * int(s.block)
		n := start + int(s.block) - addr
		if n > len(p) {
			n = len(p)
		}
		s.setInBlock(addr, p[:n])
		addr += n
		p = p[n:]
	}
}

// setInBlock updates the mirror for p, which lies inside one erase block.
func (s *Store) setInBlock(addr int, p []byte) {
	first, last := -1, -1
	erase := false
	for i, b := range p {
		old := s.mem[addr+i]
		if old == b {
			continue
		}
		if old&b != b {
			erase = true
		}
		if first < 0 {
			first = i
		}
		last = i
		s.mem[addr+i] = b
	}
	if first < 0 {
		return
	}
	if !erase {
		lo, hi := addr+first, addr+last+1
		s.programs++
		_, err := s.flash.WriteAt(s.mem[lo:hi], s.base+uint32(lo))
		if err == nil {
			return
		}
		if !errors.Is(err, hal.ErrFlashWriteRequiresErase) {
			s.fail(err)
			return
		}
	}
	s.rewrite(addr)
}

// rewrite erases the block holding addr and programs it from the mirror.
func (s *Store) rewrite(addr int) {
	start := uint32(addr) / s.block * s.block
	s.erases++
	if err := s.flash.Erase(s.base+start, s.block); err != nil {
		s.fail(err)
		return
	}
	if _, err := s.flash.WriteAt(s.mem[start:start+s.block], s.base+start); err != nil {
		s.fail(err)
	}
}

func (s *Store) fail(err error) {
	s.err = err
	if s.log != nil {
		s.log.WriteLineString(err.Error())
	}
}

// RAM is a volatile byte store, used when no flash is available.
type RAM struct {
	b []byte
}

// NewRAM returns size bytes in the erased (0xFF) state.
func NewRAM(size int) *RAM {
	r := &RAM{b: make([]byte, size)}
	for i := range r.b {
		r.b[i] = 0xFF
	}
	return r
}

func (r *RAM) Size() int { return len(r.b) }

func (r *RAM) ByteAt(addr int) byte {
	if addr < 0 || addr >= len(r.b) {
		return 0xFF
	}
	return r.b[addr]
}

func (r *RAM) SetByte(addr int, b byte) {
	if addr < 0 || addr >= len(r.b) {
		return
	}
	r.b[addr] = b
}

func (r *RAM) SetBytes(addr int, p []byte) {
	if addr < 0 || addr+len(p) > len(r.b) {
		return
	}
	copy(r.b[addr:], p)
}
