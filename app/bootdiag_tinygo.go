//go:build tinygo && bootdebug

package app

import (
	"machine"
	"sync"
	"time"

	"lcdmenu/hal"
)

var (
	bootDiagMu    sync.Mutex
	bootDiagStep  string
	bootDiagStart sync.Once
)

// bootStep records msg as the current boot stage, shows it on the LCD and
// starts a reporter that repeats it on the UART and USB CDC until power-off.
func bootStep(h hal.HAL, msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagMu.Unlock()

	bootScreen(h, msg)
	bootDiagStart.Do(func() { go bootDiagReport(h.Logger()) })
}

func bootDiagReport(l hal.Logger) {
	for {
		bootDiagMu.Lock()
		step := bootDiagStep
		bootDiagMu.Unlock()

		line := "bootdiag: " + step
		if l != nil {
			l.WriteLineString(line)
		}
		if usb := machine.USBCDC; usb != nil {
			_, _ = usb.Write([]byte(line + "\r\n"))
		}
		time.Sleep(250 * time.Millisecond)
	}
}
