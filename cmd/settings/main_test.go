package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"lcdmenu/config"
	"lcdmenu/eeprom"
	"lcdmenu/hal"
	"lcdmenu/settings"
)

func writeImage(t *testing.T, path string, tab config.Table) {
	t.Helper()
	ff, err := hal.OpenFileFlash(path, 8192)
	if err != nil {
		t.Fatal(err)
	}
	defer ff.Close()
	st, err := eeprom.Open(ff, tab.Region.Base, tab.Region.Size, nil)
	if err != nil {
		t.Fatal(err)
	}
	v := "Dim"
	snap := settings.Snapshot{Entries: []settings.Entry{{Label: "Backlight", Kind: config.KindChoice, Choice: &v}}}
	if err := settings.Restore(snap, tab, st); err != nil {
		t.Fatal(err)
	}
}

func TestDumpYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flash.bin")
	tab := config.Default()
	writeImage(t, path, tab)

	out, err := dump(path, tab, "yaml")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(string(out), "choice: Dim") {
		t.Fatalf("dump() = %s, want Backlight Dim", out)
	}
}

func TestDumpCBOR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flash.bin")
	tab := config.Default()
	writeImage(t, path, tab)

	out, err := dump(path, tab, "cbor")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	snap, err := settings.DecodeCBOR(out)
	if err != nil {
		t.Fatalf("DecodeCBOR: %v", err)
	}
	if got := *snap.Entries[4].Choice; got != "Dim" {
		t.Fatalf("Backlight = %q, want Dim", got)
	}
}

func TestDumpErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := dump(filepath.Join(dir, "missing.bin"), config.Default(), "yaml"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("dump(missing) = %v, want ErrNotExist", err)
	}
	path := filepath.Join(dir, "flash.bin")
	writeImage(t, path, config.Default())
	if _, err := dump(path, config.Default(), "json"); err == nil {
		t.Fatal("dump(json) = nil error")
	}
}
