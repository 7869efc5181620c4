//go:build tinygo && baremetal && (rp2040 || rp2350)

package hal

import (
	"fmt"
	"machine"
)

// rp2Flash exposes the flash after the program image. The chip programs whole
// pages at page-aligned offsets, so WriteAt widens every write to the pages it
// touches and fills the rest with the bytes already there.
type rp2Flash struct {
	page []byte
}

func newBoardFlash() Flash {
	return &rp2Flash{page: make([]byte, machine.Flash.WriteBlockSize())}
}

func clampU32(v int64) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > int64(^uint32(0)):
		return ^uint32(0)
	}
	return uint32(v)
}

func (f *rp2Flash) SizeBytes() uint32       { return clampU32(machine.Flash.Size()) }
func (f *rp2Flash) EraseBlockBytes() uint32 { return clampU32(machine.Flash.EraseBlockSize()) }

func (f *rp2Flash) ReadAt(p []byte, off uint32) (int, error) {
	n, err := machine.Flash.ReadAt(p, int64(off))
	if err != nil {
		return n, fmt.Errorf("flash read at %d: %w", off, err)
	}
	return n, nil
}

func (f *rp2Flash) WriteAt(p []byte, off uint32) (int, error) {
	ps := uint32(len(f.page))
	if ps == 0 {
		return 0, ErrNotImplemented
	}
	if uint64(off)+uint64(len(p)) > uint64(f.SizeBytes()) {
		return 0, fmt.Errorf("flash write at %d+%d: past end", off, len(p))
	}

	written := 0
	for written < len(p) {
		at := off + uint32(written)
		start := at / ps * ps
		if _, err := machine.Flash.ReadAt(f.page, int64(start)); err != nil {
			return written, fmt.Errorf("flash read page %d: %w", start, err)
		}
		in := f.page[at-start:]
		chunk := p[written:]
		if len(chunk) > len(in) {
			chunk = chunk[:len(in)]
		}
		for i, b := range chunk {
			if in[i]&b != b {
				return written, ErrFlashWriteRequiresErase
			}
		}
		n := copy(in, chunk)
		if _, err := machine.Flash.WriteAt(f.page, int64(start)); err != nil {
			return written, fmt.Errorf("flash write page %d: %w", start, err)
		}
		written += n
	}
	return written, nil
}

func (f *rp2Flash) Erase(off, size uint32) error {
	if size == 0 {
		return nil
	}
	bs := f.EraseBlockBytes()
	if bs == 0 {
		return ErrNotImplemented
	}
	if off%bs != 0 || size%bs != 0 {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, ErrNotImplemented)
	}
	return machine.Flash.EraseBlocks(int64(off/bs), int64(size/bs))
}
