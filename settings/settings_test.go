package settings

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"lcdmenu/config"
	"lcdmenu/eeprom"
)

func u32(v uint32) *uint32   { return &v }
func f32(v float32) *float32 { return &v }
func str(v string) *string   { return &v }

func dump(r *eeprom.RAM) []byte {
	b := make([]byte, r.Size())
	for i := range b {
		b[i] = r.ByteAt(i)
	}
	return b
}

func TestCaptureErased(t *testing.T) {
	tab := config.Default()
	snap, err := Capture(tab, eeprom.NewRAM(int(tab.Region.Size)))
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(snap.Entries) != len(tab.Items) {
		t.Fatalf("len(Entries) = %d, want %d", len(snap.Entries), len(tab.Items))
	}
	if got := *snap.Entries[0].Int; got != 9999 {
		t.Fatalf("Setpoint = %d, want 9999", got)
	}
	if got := *snap.Entries[1].Float; got != 0 {
		t.Fatalf("Gain = %v, want 0", got)
	}
	if got := *snap.Entries[2].Choice; got != "Off" {
		t.Fatalf("Mode = %q, want %q", got, "Off")
	}
	if got := *snap.Entries[3].Text; got != "        " {
		t.Fatalf("Name = %q, want 8 spaces", got)
	}
}

func TestRestoreThenCapture(t *testing.T) {
	tab := config.Default()
	store := eeprom.NewRAM(int(tab.Region.Size))
	in := Snapshot{Entries: []Entry{
		{Label: "Setpoint", Kind: config.KindInt, Int: u32(1234)},
		{Label: "Gain", Kind: config.KindFloat, Float: f32(2.5)},
		{Label: "Mode", Kind: config.KindChoice, Choice: str("Cool")},
		{Label: "Name", Kind: config.KindText, Text: str("PUMP 2")},
	}}
	if err := Restore(in, tab, store); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	out, err := Capture(tab, store)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if got := *out.Entries[0].Int; got != 1234 {
		t.Fatalf("Setpoint = %d, want 1234", got)
	}
	if got := *out.Entries[1].Float; got != 2.5 {
		t.Fatalf("Gain = %v, want 2.5", got)
	}
	if got := *out.Entries[2].Choice; got != "Cool" {
		t.Fatalf("Mode = %q, want Cool", got)
	}
	if got := *out.Entries[3].Text; got != "PUMP 2  " {
		t.Fatalf("Name = %q, want %q", got, "PUMP 2  ")
	}
	if got := *out.Entries[4].Choice; got != "On" {
		t.Fatalf("Backlight = %q, want On", got)
	}
}

func TestRestoreRejectsWithoutWriting(t *testing.T) {
	tab := config.Default()
	tests := []struct {
		name  string
		entry Entry
		want  error
	}{
		{"unknown label", Entry{Label: "Volume", Kind: config.KindInt, Int: u32(1)}, ErrUnknownLabel},
		{"kind mismatch", Entry{Label: "Mode", Kind: config.KindInt, Int: u32(1)}, ErrKindMismatch},
		{"bad choice", Entry{Label: "Mode", Kind: config.KindChoice, Choice: str("Fan")}, ErrBadValue},
		{"missing value", Entry{Label: "Gain", Kind: config.KindFloat}, ErrBadValue},
		{"text too long", Entry{Label: "Name", Kind: config.KindText, Text: str("ABCDEFGHI")}, ErrBadValue},
	}
	for _, tt := range tests {
		store := eeprom.NewRAM(int(tab.Region.Size))
		before := dump(store)
		snap := Snapshot{Entries: []Entry{
			{Label: "Setpoint", Kind: config.KindInt, Int: u32(42)},
			tt.entry,
		}}
		if err := Restore(snap, tab, store); !errors.Is(err, tt.want) {
			t.Fatalf("%s: Restore() = %v, want %v", tt.name, err, tt.want)
		}
		if !bytes.Equal(dump(store), before) {
			t.Fatalf("%s: store modified by failed Restore", tt.name)
		}
	}
}

func sampleSnapshot() Snapshot {
	return Snapshot{
		Build: "test",
		Taken: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Entries: []Entry{
			{Label: "Setpoint", Kind: config.KindInt, Int: u32(7)},
			{Label: "Gain", Kind: config.KindFloat, Float: f32(0.125)},
			{Label: "Mode", Kind: config.KindChoice, Choice: str("Heat")},
			{Label: "Name", Kind: config.KindText, Text: str("AB")},
		},
	}
}

func checkSame(t *testing.T, got, want Snapshot) {
	t.Helper()
	if got.Build != want.Build || !got.Taken.Equal(want.Taken) || len(got.Entries) != len(want.Entries) {
		t.Fatalf("snapshot = %+v, want %+v", got, want)
	}
	for i, w := range want.Entries {
		g := got.Entries[i]
		if g.Label != w.Label || g.Kind != w.Kind {
			t.Fatalf("entry %d = %s/%v, want %s/%v", i, g.Label, g.Kind, w.Label, w.Kind)
		}
		switch {
		case w.Int != nil && (g.Int == nil || *g.Int != *w.Int),
			w.Float != nil && (g.Float == nil || *g.Float != *w.Float),
			w.Choice != nil && (g.Choice == nil || *g.Choice != *w.Choice),
			w.Text != nil && (g.Text == nil || *g.Text != *w.Text):
			t.Fatalf("entry %d value = %+v, want %+v", i, g, w)
		}
	}
}

func TestCBOR(t *testing.T) {
	in := sampleSnapshot()
	a, err := EncodeCBOR(in)
	if err != nil {
		t.Fatalf("EncodeCBOR: %v", err)
	}
	b, _ := EncodeCBOR(in)
	if !bytes.Equal(a, b) {
		t.Fatal("EncodeCBOR not deterministic")
	}
	out, err := DecodeCBOR(a)
	if err != nil {
		t.Fatalf("DecodeCBOR: %v", err)
	}
	checkSame(t, out, in)

	if _, err := DecodeCBOR([]byte{0xFF}); err == nil {
		t.Fatal("DecodeCBOR(garbage) = nil error")
	}
}

func TestYAML(t *testing.T) {
	in := sampleSnapshot()
	b, err := EncodeYAML(in)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	if !bytes.Contains(b, []byte("kind: choice")) {
		t.Fatalf("EncodeYAML() = %s, want kinds by name", b)
	}
	out, err := DecodeYAML(b)
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	checkSame(t, out, in)
}
