package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"lcdmenu/hal"
)

// guard turns a panic inside step into a logged report, a message on the
// display and an error return, so the host loop can exit cleanly.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			reportPanic(h, v, debug.Stack())
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("lcdmenu panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	disp, panel := openDisplay(h.Display())
	msg := fmt.Sprint(v)
	disp.WriteAt(0, 0, "Panic:          ")
	disp.WriteAt(1, 0, fitLine(msg))
	if panel != nil {
		_ = panel.Flush()
	}
}

func fitLine(s string) string {
	const width = 16
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
