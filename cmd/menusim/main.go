//go:build !tinygo

// Command menusim runs the settings menu in a terminal, drawing the 16x2 LCD
// with lipgloss and persisting to a flash image like the device does.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lcdmenu/config"
	"lcdmenu/eeprom"
	"lcdmenu/hal"
)

func main() {
	var flashPath, menuPath string
	flag.StringVar(&flashPath, "flash", "lcdmenu.flash", "Flash image path (created erased if missing).")
	flag.StringVar(&menuPath, "menu", "", "YAML menu table (default: built-in table).")
	flag.Parse()

	tab := config.Default()
	if menuPath != "" {
		t, err := config.Load(menuPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(2)
		}
		tab = t
	}

	ff, err := hal.OpenFileFlash(flashPath, 64*1024)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer func() { _ = ff.Close() }()

	log := newLogRing(4)
	st, err := eeprom.Open(ff, tab.Region.Base, tab.Region.Size, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	m, err := newModel(tab, st, log, wallClock())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
