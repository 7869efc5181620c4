//go:build !tinygo

package hal

import "time"

// hostTime derives millisecond ticks from the wall clock. Each call to step
// emits the ticks that elapsed since the previous one, so a slow frame
// catches up instead of stretching time.
type hostTime struct {
	ch    chan uint64
	start time.Time
	seq   uint64
	now   func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) step() {
	now := t.now()
	if t.start.IsZero() {
		t.start = now
	}
	target := uint64(now.Sub(t.start) / time.Millisecond)
	for t.seq < target {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
			// Full: drop the oldest tick so the newest is always queued.
			select {
			case <-t.ch:
			default:
			}
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}
}
