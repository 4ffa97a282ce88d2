//go:build tinygo

package device

import (
	"machine"

	"tinygo.org/x/drivers/st7735"
)

// PinConfig has the digital pins of the pad
type PinConfig struct {
	// Button is the pull-up, active-low switch
	Button machine.Pin
	// Sense is a secondary pull-up line that is only shown on the status screen
	Sense machine.Pin
	// Outputs are A and B, which are pulsed, and C, which is held low and only displayed
	Outputs [3]machine.Pin
}

// StripConfig has device-level values for setting up the WS2812 strip
type StripConfig struct {
	Pin machine.Pin
}

// DisplayConfig has device-level values for setting up the SPI status panel
type DisplayConfig struct {
	SPI       *machine.SPI
	Frequency uint32
	SDO       machine.Pin
	SCK       machine.Pin

	Reset     machine.Pin
	DC        machine.Pin
	CS        machine.Pin
	Backlight machine.Pin

	Panel st7735.Config
}
