//go:build !tinygo

// Command settings prints the values stored in a flash image, or the menu
// table that describes them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"lcdmenu/config"
	"lcdmenu/eeprom"
	"lcdmenu/hal"
	"lcdmenu/settings"
)

func main() {
	var flashPath, menuPath, format, outPath string
	var table bool
	flag.StringVar(&flashPath, "flash", "lcdmenu.flash", "Flash image to read.")
	flag.StringVar(&menuPath, "menu", "", "YAML menu table (default: built-in table).")
	flag.StringVar(&format, "format", "yaml", "Output format: yaml|cbor.")
	flag.StringVar(&outPath, "out", "", "Output file (default: stdout).")
	flag.BoolVar(&table, "table", false, "Print the menu table as YAML instead of the stored values.")
	flag.Parse()

	tab := config.Default()
	if menuPath != "" {
		t, err := config.Load(menuPath)
		if err != nil {
			fatalf("%v", err)
		}
		tab = t
	}

	var out []byte
	var err error
	if table {
		out, err = config.Marshal(tab)
	} else {
		out, err = dump(flashPath, tab, format)
	}
	if err != nil {
		fatalf("%v", err)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(out)
	} else {
		err = os.WriteFile(outPath, out, 0o644)
	}
	if err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// dump captures the table's values from the image at path. A missing image is
// an error rather than a freshly erased one.
func dump(path string, tab config.Table, format string) ([]byte, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("flash image %q: %w", path, err)
	}
	ff, err := hal.OpenFileFlash(path, hal.HostFlashEraseBlockBytes)
	if err != nil {
		return nil, err
	}
	defer func() { _ = ff.Close() }()

	st, err := eeprom.Open(ff, tab.Region.Base, tab.Region.Size, nil)
	if err != nil {
		return nil, err
	}
	snap, err := settings.Capture(tab, st)
	if err != nil {
		return nil, err
	}

	switch format {
	case "yaml":
		return settings.EncodeYAML(snap)
	case "cbor":
		return settings.EncodeCBOR(snap)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
