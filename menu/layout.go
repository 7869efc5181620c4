package menu

import (
	"errors"
	"fmt"
)

var (
	ErrNoItems    = errors.New("menu: no items")
	ErrOverlap    = errors.New("menu: storage overlap")
	ErrOutOfRange = errors.New("menu: storage out of range")
)

// Extent is the storage byte range owned by an item.
type Extent struct {
	Addr int
	Size int
}

func (e Extent) End() int { return e.Addr + e.Size }

func (e Extent) Overlaps(o Extent) bool {
	return e.Addr < o.End() && o.Addr < e.End()
}

// ValidateLayout checks that no two items share storage bytes and that every
// extent fits in capacity bytes. A zero capacity skips the bounds check.
func ValidateLayout(items []Item, capacity int) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for i, it := range items {
		e := it.Extent()
		if e.Addr < 0 || (capacity > 0 && e.End() > capacity) {
			return fmt.Errorf("%w: %q at [%d,%d), capacity %d", ErrOutOfRange, it.Label(), e.Addr, e.End(), capacity)
		}
		for _, prev := range items[:i] {
			p := prev.Extent()
			if e.Overlaps(p) {
				return fmt.Errorf("%w: %q [%d,%d) and %q [%d,%d)",
					ErrOverlap, prev.Label(), p.Addr, p.End(), it.Label(), e.Addr, e.End())
			}
		}
	}
	return nil
}
