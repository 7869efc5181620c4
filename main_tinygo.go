//go:build tinygo

package main

import (
	"lcdmenu/app"
	"lcdmenu/hal"
)

func main() {
	app.Run(hal.New())
}
