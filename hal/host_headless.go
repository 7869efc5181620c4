//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Keys is pressed and released one per tick, in order, from the first tick.
	Keys []KeyCode
}

// RunHeadless runs the menu loop without opening a window. Button input comes
// only from cfg.Keys; after the script runs out the idle timeout still fires.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := New().(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}
	defer func() {
		h.logger.WriteLineString(fmt.Sprintf("headless: %d frames presented", h.fb.frames))
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	script := cfg.Keys
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if len(script) > 0 {
				h.kbd.send(script[0], true)
				h.kbd.send(script[0], false)
				script = script[1:]
			}
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
