//go:build !tinygo

package hal

import (
	"fmt"
	"strings"
)

// hostKeyboard queues button events from the window or a headless script.
// Events are dropped when nobody drains the queue.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) send(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}

var keyNames = map[string]KeyCode{
	"left":  KeyLeft,
	"right": KeyRight,
	"up":    KeyUp,
	"down":  KeyDown,
}

// ParseKeys reads a comma-separated button script such as "down,right,up".
// An empty string is an empty script.
func ParseKeys(s string) ([]KeyCode, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var keys []KeyCode
	for _, f := range strings.Split(s, ",") {
		code, ok := keyNames[strings.ToLower(strings.TrimSpace(f))]
		if !ok {
			return nil, fmt.Errorf("unknown button %q (want left, right, up or down)", f)
		}
		keys = append(keys, code)
	}
	return keys, nil
}
