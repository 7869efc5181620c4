//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	lcd    TextDisplay
	kbd    Keyboard
	t      *tinyGoTime
	flash  Flash
}

// Board wiring: HD44780 in 4-bit mode on GP2..GP5 (D4..D7), GP6 (E), GP7 (RS);
// buttons on GP16 (left), GP17 (right), GP18 (up), GP19 (down), active low.
var (
	lcdDataPins = []machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5}
	lcdEnable   = machine.GP6
	lcdRS       = machine.GP7

	buttonPins = [...]buttonPin{
		{pin: machine.GP16, code: KeyLeft},
		{pin: machine.GP17, code: KeyRight},
		{pin: machine.GP18, code: KeyUp},
		{pin: machine.GP19, code: KeyDown},
	}
)

// New returns a Pico (RP2040/RP2350) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var lcd TextDisplay
	if d, err := newHD44780(lcdDataPins, lcdEnable, lcdRS, 16, 2); err != nil {
		logger.WriteLineString("hal: lcd: " + err.Error())
	} else {
		lcd = d
	}

	return &tinyGoHAL{
		logger: logger,
		lcd:    lcd,
		kbd:    newButtonKeyboard(buttonPins[:]),
		t:      newTinyGoTime(),
		flash:  newBoardFlash(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: &stubFramebuffer{}, text: h.lcd} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Flash() Flash     { return h.flash }
func (h *tinyGoHAL) Time() Time       { return h.t }
