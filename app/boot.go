//go:build !(tinygo && bootdebug)

package app

import "lcdmenu/hal"

func bootStep(h hal.HAL, msg string) {}
