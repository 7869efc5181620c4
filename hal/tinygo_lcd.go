//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/hd44780"
)

// hd44780Display drives a parallel HD44780 character LCD with the cursor shown.
type hd44780Display struct {
	dev hd44780.Device
}

func newHD44780(data []machine.Pin, e, rs machine.Pin, cols, rows int16) (*hd44780Display, error) {
	dev, err := hd44780.NewGPIO4Bit(data, e, rs, machine.NoPin)
	if err != nil {
		return nil, err
	}
	if err := dev.Configure(hd44780.Config{
		Width:       cols,
		Height:      rows,
		CursorOnOff: true,
		CursorBlink: true,
	}); err != nil {
		return nil, err
	}
	dev.ClearDisplay()
	return &hd44780Display{dev: dev}, nil
}

func (d *hd44780Display) WriteAt(row, col int, s string) {
	d.dev.SetCursor(uint8(col), uint8(row))
	d.dev.Write([]byte(s))
	d.dev.Display()
}

func (d *hd44780Display) SetCursor(row, col int) {
	d.dev.SetCursor(uint8(col), uint8(row))
}
