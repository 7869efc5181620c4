//go:build !tinygo

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"lcdmenu/config"
	"lcdmenu/eeprom"
	"lcdmenu/hal"
	"lcdmenu/settings"
)

const (
	defaultFlashPath = "lcdmenu.flash"
	defaultFlashSize = 64 * 1024
)

func main() {
	var outPath, menuPath, seedPath string
	var flashSize uint64
	flag.StringVar(&outPath, "out", defaultFlashPath, "Output flash image path.")
	flag.Uint64Var(&flashSize, "size", defaultFlashSize, "Flash image size (bytes).")
	flag.StringVar(&menuPath, "menu", "", "YAML menu table (default: built-in table).")
	flag.StringVar(&seedPath, "seed", "", "Snapshot (.cbor or .yaml) to write into the new image.")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	tab := config.Default()
	if menuPath != "" {
		t, err := config.Load(menuPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(2)
		}
		tab = t
	}

	if err := run(outPath, flashSize, tab, seedPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run creates an erased image at outPath and, if seedPath is set, writes the
// snapshot's values into the settings region. The size and seed are checked
// before any existing image is touched.
func run(outPath string, flashSize uint64, tab config.Table, seedPath string) error {
	if flashSize > math.MaxUint32 {
		return fmt.Errorf("flash size %d exceeds %d bytes", flashSize, uint64(math.MaxUint32))
	}
	if end := uint64(tab.Region.Base) + uint64(tab.Region.Size); end > flashSize {
		return fmt.Errorf("settings region %d+%d does not fit %d-byte flash", tab.Region.Base, tab.Region.Size, flashSize)
	}

	var snap settings.Snapshot
	if seedPath != "" {
		var err error
		if snap, err = readSnapshot(seedPath); err != nil {
			return err
		}
		if err := settings.Restore(snap, tab, eeprom.NewRAM(int(tab.Region.Size))); err != nil {
			return fmt.Errorf("seed %q: %w", seedPath, err)
		}
	}

	if err := os.Remove(outPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove old image %q: %w", outPath, err)
	}
	ff, err := hal.OpenFileFlash(outPath, uint32(flashSize))
	if err != nil {
		return err
	}
	defer func() { _ = ff.Close() }()

	if seedPath == "" {
		return nil
	}
	st, err := eeprom.Open(ff, tab.Region.Base, tab.Region.Size, nil)
	if err != nil {
		return err
	}
	if err := settings.Restore(snap, tab, st); err != nil {
		return fmt.Errorf("seed %q: %w", seedPath, err)
	}
	return st.Err()
}

func readSnapshot(path string) (settings.Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return settings.Snapshot{}, fmt.Errorf("read snapshot %q: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return settings.DecodeCBOR(b)
	}
	return settings.DecodeYAML(b)
}
