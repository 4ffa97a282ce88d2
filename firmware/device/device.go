//go:build tinygo

// Package device sets up the pad's pins, LED strip, status panel and serial link
package device

import (
	"errors"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/st7735"
	"tinygo.org/x/drivers/ws2812"

	"github.com/calvinmclean/dondonpa"
	"github.com/calvinmclean/dondonpa/firmware/controller"
	"github.com/calvinmclean/dondonpa/firmware/status"
)

// New configures the hardware and returns it in the shape the control loop expects
func New(pinCfg PinConfig, stripCfg StripConfig, displayCfg DisplayConfig) (controller.Hardware, error) {
	pinCfg.Button.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinCfg.Sense.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	var outputs [3]controller.Output
	for i, p := range pinCfg.Outputs {
		outputs[i] = newOutputPin(p)
	}

	stripCfg.Pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	strip := ws2812.New(stripCfg.Pin)

	display, err := newDisplay(displayCfg)
	if err != nil {
		return controller.Hardware{}, errors.New("error creating display: " + err.Error())
	}

	err = machine.Serial.Configure(machine.UARTConfig{BaudRate: dondonpa.BaudRate})
	if err != nil {
		return controller.Hardware{}, errors.New("error configuring serial: " + err.Error())
	}

	return controller.Hardware{
		Button:  pinCfg.Button,
		Sense:   pinCfg.Sense,
		Outputs: outputs,
		Strip:   strip,
		Serial:  machine.Serial,
		Painter: status.NewTextPainter(display),
	}, nil
}

func newDisplay(cfg DisplayConfig) (*st7735.Device, error) {
	err := cfg.SPI.Configure(machine.SPIConfig{
		Frequency: cfg.Frequency,
		SDO:       cfg.SDO,
		SCK:       cfg.SCK,
	})
	if err != nil {
		return nil, errors.New("error configuring spi: " + err.Error())
	}

	display := st7735.New(cfg.SPI, cfg.Reset, cfg.DC, cfg.CS, cfg.Backlight)
	display.Configure(cfg.Panel)
	display.FillScreen(color.RGBA{A: 255})
	display.EnableBacklight(true)

	return &display, nil
}

// outputPin remembers the level it drives. Reading back an output with Get is not reliable on
// every chip, and the status screen needs the driven level.
type outputPin struct {
	pin   machine.Pin
	level bool
}

func newOutputPin(p machine.Pin) *outputPin {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return &outputPin{pin: p}
}

func (o *outputPin) Get() bool {
	return o.level
}

func (o *outputPin) Set(level bool) {
	o.level = level
	o.pin.Set(level)
}
