package controller

import (
	"image/color"

	"github.com/calvinmclean/dondonpa/firmware/commands"
	"github.com/calvinmclean/dondonpa/firmware/status"
)

// Input is a digital input. machine.Pin implements it.
type Input interface {
	Get() bool
}

// Output is a digital output that can report the level it is driving
type Output interface {
	Get() bool
	Set(bool)
}

// Strip is an addressable LED strip. ws2812.Device implements it.
type Strip interface {
	WriteColors([]color.RGBA) error
}

// Serial is the serial link. machine.Serial implements it.
type Serial interface {
	commands.Serial
	Write([]byte) (int, error)
}

// Output indexes in Hardware.Outputs
const (
	OutputA = iota
	OutputB
	OutputC
)

// Hardware is everything the control loop touches
type Hardware struct {
	// Button is the pull-up, active-low switch
	Button Input
	// Sense is a secondary pull-up line that is only displayed
	Sense Input
	// Outputs are A and B, which are pulsed, and C, which is only displayed
	Outputs [3]Output
	Strip   Strip
	Serial  Serial
	Painter status.Painter
}

var (
	stripOn  = color.RGBA{R: 255, G: 255, B: 255}
	stripOff = color.RGBA{}
)

// pinActuator drives an output high for the length of a pulse
type pinActuator struct {
	pin Output
}

func (a pinActuator) On() error {
	a.pin.Set(true)
	return nil
}

func (a pinActuator) Off() error {
	a.pin.Set(false)
	return nil
}

// stripActuator sets every pixel of the strip to white for the length of a pulse
type stripActuator struct {
	strip  Strip
	pixels []color.RGBA
}

func newStripActuator(strip Strip, length int) *stripActuator {
	return &stripActuator{
		strip:  strip,
		pixels: make([]color.RGBA, length),
	}
}

func (a *stripActuator) On() error {
	return a.fill(stripOn)
}

func (a *stripActuator) Off() error {
	return a.fill(stripOff)
}

func (a *stripActuator) fill(c color.RGBA) error {
	for i := range a.pixels {
		a.pixels[i] = c
	}
	return a.strip.WriteColors(a.pixels)
}
