//go:build !tinygo

package hal

import (
	"reflect"
	"testing"
)

func TestParseKeys(t *testing.T) {
	got, err := ParseKeys(" down, Right ,up,left")
	if err != nil {
		t.Fatalf("ParseKeys: %v", err)
	}
	want := []KeyCode{KeyDown, KeyRight, KeyUp, KeyLeft}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseKeys() = %v, want %v", got, want)
	}
	if got, err := ParseKeys(""); err != nil || got != nil {
		t.Fatalf("ParseKeys(\"\") = %v, %v, want nil, nil", got, err)
	}
	if _, err := ParseKeys("down,enter"); err == nil {
		t.Fatal("ParseKeys(enter) = nil error")
	}
}

func TestHostKeyboardSendDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < cap(k.ch)+5; i++ {
		k.send(KeyUp, true)
	}
	if len(k.ch) != cap(k.ch) {
		t.Fatalf("queued = %d, want %d", len(k.ch), cap(k.ch))
	}
	if ev := <-k.Events(); ev != (KeyEvent{Code: KeyUp, Press: true}) {
		t.Fatalf("event = %+v", ev)
	}
}
