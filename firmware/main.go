//go:build tinygo

package main

import (
	"machine"

	"tinygo.org/x/drivers/st7735"

	"github.com/calvinmclean/dondonpa/firmware/clock"
	"github.com/calvinmclean/dondonpa/firmware/controller"
	"github.com/calvinmclean/dondonpa/firmware/device"
)

func main() {
	pinCfg := device.PinConfig{
		Button:  machine.GPIO6,
		Sense:   machine.GPIO7,
		Outputs: [3]machine.Pin{machine.GPIO38, machine.GPIO39, machine.GPIO8},
	}

	stripCfg := device.StripConfig{
		Pin: machine.GPIO5,
	}

	displayCfg := device.DisplayConfig{
		SPI:       machine.SPI0,
		Frequency: 27_000_000,
		SDO:       machine.GPIO21,
		SCK:       machine.GPIO17,
		Reset:     machine.GPIO34,
		DC:        machine.GPIO33,
		CS:        machine.GPIO15,
		Backlight: machine.GPIO16,
		Panel: st7735.Config{
			Width:        128,
			Height:       128,
			Model:        st7735.GREENTAB,
			ColumnOffset: 2,
			RowOffset:    1,
		},
	}

	hw, err := device.New(pinCfg, stripCfg, displayCfg)
	if err != nil {
		panic(err)
	}

	c := controller.New(hw, controller.DefaultConfig(), clock.NewMonotonic())
	c.Run()
}
