package menu

import (
	"errors"
	"testing"
	"time"
)

type rig struct {
	store *memStore
	scr   *screen
	btn   *pressQueue
	clock *manualClock
	log   *lineLog
	items []Item
	m     *Menu
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		store: newMemStore(16),
		scr:   newScreen(),
		btn:   &pressQueue{},
		clock: &manualClock{ms: 1000},
		log:   &lineLog{},
	}
	NewNumber(r.store, 0).SetUint32(12)
	NewNumber(r.store, 4).SetUint32(7)
	r.store.b[8] = 1
	r.store.writes = 0

	r.items = []Item{
		NewInt(r.scr, r.store, "First", 0, 2),
		NewInt(r.scr, r.store, "Second", 4, 2),
		NewChoice(r.scr, r.store, "Third", 8, []string{"x", "y", "z"}),
	}
	m, err := New(r.btn, r.clock, r.items, WithLogger(r.log))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.m = m
	return r
}

func (r *rig) press(b Button) bool {
	r.btn.press(b)
	return r.m.Check()
}

func TestMenuStartsOnFirstItem(t *testing.T) {
	r := newRig(t)
	if r.m.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", r.m.Active())
	}
	if got := r.scr.line(0); got != "First" {
		t.Fatalf("row 0 = %q, want %q", got, "First")
	}
	if r.m.Check() {
		t.Fatal("Check() without input = true, want false")
	}
}

func TestMenuRightMovesThroughSectionsThenItems(t *testing.T) {
	r := newRig(t)
	r.press(ButtonRight)
	if r.m.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", r.m.Active())
	}
	r.press(ButtonRight)
	if r.m.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", r.m.Active())
	}
	if r.scr.col != 0 {
		t.Fatalf("cursor col = %d, want 0", r.scr.col)
	}
	if got := r.scr.line(0); got != "Second" {
		t.Fatalf("row 0 = %q, want %q", got, "Second")
	}
}

func TestMenuLeftEntersPreviousItemFromEnd(t *testing.T) {
	r := newRig(t)
	r.press(ButtonRight)
	r.press(ButtonRight)
	r.press(ButtonLeft)
	if r.m.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", r.m.Active())
	}
	if r.scr.col != 1 {
		t.Fatalf("cursor col = %d, want 1", r.scr.col)
	}
}

func TestMenuDoesNotWrapAtEnds(t *testing.T) {
	r := newRig(t)
	if !r.press(ButtonLeft) {
		t.Fatal("Check() = false, want true")
	}
	if r.m.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", r.m.Active())
	}

	for i := 0; i < 10; i++ {
		r.press(ButtonRight)
	}
	if r.m.Active() != 2 {
		t.Fatalf("Active() = %d, want 2", r.m.Active())
	}
	if got := r.scr.line(0); got != "Third" {
		t.Fatalf("row 0 = %q, want %q", got, "Third")
	}
}

func TestMenuCommitsWhenLeavingItem(t *testing.T) {
	r := newRig(t)
	r.press(ButtonRight)
	r.press(ButtonUp)
	if r.store.writes != 0 {
		t.Fatalf("writes while editing = %d, want 0", r.store.writes)
	}
	r.press(ButtonRight)
	if got := NewNumber(r.store, 0).Uint32(); got != 13 {
		t.Fatalf("stored = %d, want 13", got)
	}
}

func TestMenuUpDownEditActiveItem(t *testing.T) {
	r := newRig(t)
	r.press(ButtonDown)
	if got := r.items[0].(*IntItem).Value(); got != 2 {
		t.Fatalf("Value() = %d, want 2", got)
	}
	r.press(ButtonUp)
	r.press(ButtonUp)
	if got := r.items[0].(*IntItem).Value(); got != 22 {
		t.Fatalf("Value() = %d, want 22", got)
	}
}

func TestMenuTimeoutReturnsToFirstItemAndCommitsOnce(t *testing.T) {
	r := newRig(t)
	r.press(ButtonRight)
	r.press(ButtonRight)
	r.press(ButtonRight)
	r.press(ButtonUp)
	if r.m.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", r.m.Active())
	}
	writes := r.store.writes

	r.clock.ms += uint64(DefaultTimeout/time.Millisecond) - 1
	r.m.Check()
	if r.m.Active() != 1 {
		t.Fatal("timed out early")
	}

	r.clock.ms++
	if r.m.Check() {
		t.Fatal("Check() on timeout = true, want false")
	}
	if r.m.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", r.m.Active())
	}
	if r.scr.col != 0 || r.scr.row != 1 {
		t.Fatalf("cursor = %d,%d, want 1,0", r.scr.row, r.scr.col)
	}
	if got := r.store.writes - writes; got != NumberSize {
		t.Fatalf("commit writes = %d, want %d", got, NumberSize)
	}
	if got := NewNumber(r.store, 4).Uint32(); got != 8 {
		t.Fatalf("stored = %d, want 8", got)
	}

	writes = r.store.writes
	r.clock.ms += uint64(DefaultTimeout / time.Millisecond)
	r.m.Check()
	if r.store.writes != writes {
		t.Fatalf("writes after second idle period = %d, want %d", r.store.writes, writes)
	}
	if len(r.log.lines) == 0 {
		t.Fatal("expected log lines")
	}
}

func TestMenuInputResetsTimeout(t *testing.T) {
	r := newRig(t)
	r.press(ButtonRight)
	r.press(ButtonRight)

	half := uint64(DefaultTimeout/time.Millisecond) / 2
	r.clock.ms += half
	r.press(ButtonUp)
	r.clock.ms += half + 1
	r.m.Check()
	if r.m.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", r.m.Active())
	}
}

func TestMenuWithTimeout(t *testing.T) {
	store := newMemStore(8)
	clock := &manualClock{}
	btn := &pressQueue{}
	scr := newScreen()
	items := []Item{NewInt(scr, store, "A", 0, 1), NewInt(scr, store, "B", 4, 1)}
	m, err := New(btn, clock, items, WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	btn.press(ButtonRight)
	m.Check()
	if m.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", m.Active())
	}
	clock.ms = 1000
	m.Check()
	if m.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", m.Active())
	}
}

func TestNewRejectsBadLayout(t *testing.T) {
	store := newMemStore(16)
	scr := newScreen()

	if _, err := New(&pressQueue{}, &manualClock{}, nil); !errors.Is(err, ErrNoItems) {
		t.Fatalf("New(nil) err = %v, want %v", err, ErrNoItems)
	}

	items := []Item{
		NewInt(scr, store, "A", 0, 2),
		NewText(scr, store, "B", 3, "AB", 2),
	}
	if _, err := New(&pressQueue{}, &manualClock{}, items); !errors.Is(err, ErrOverlap) {
		t.Fatalf("New(overlap) err = %v, want %v", err, ErrOverlap)
	}
}

func TestValidateLayoutCapacity(t *testing.T) {
	store := newMemStore(16)
	scr := newScreen()
	items := []Item{
		NewChoice(scr, store, "A", 0, []string{"x"}),
		NewInt(scr, store, "B", 12, 2),
	}
	if err := ValidateLayout(items, 16); err != nil {
		t.Fatalf("ValidateLayout: %v", err)
	}
	if err := ValidateLayout(items, 15); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ValidateLayout err = %v, want %v", err, ErrOutOfRange)
	}
}
