//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"lcdmenu/app"
	"lcdmenu/config"
	"lcdmenu/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var menuPath, flashPath, keys string
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&menuPath, "menu", "", "YAML menu table (default: built-in table).")
	flag.StringVar(&flashPath, "flash", "", "Flash image path (default: $LCDMENU_FLASH_PATH or lcdmenu.flash).")
	flag.StringVar(&keys, "keys", "", "Headless button script, one per tick, e.g. \"down,right,up\".")
	flag.Parse()

	script, err := hal.ParseKeys(keys)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Keys = script

	appCfg := app.Config{Table: config.Default()}
	if menuPath != "" {
		t, err := config.Load(menuPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		appCfg.Table = t
	}
	if flashPath != "" {
		os.Setenv("LCDMENU_FLASH_PATH", flashPath)
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
