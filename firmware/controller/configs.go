package controller

import (
	"time"

	"github.com/calvinmclean/dondonpa"
)

// Config has the timings of the control loop and the pin labels shown on the status screen
type Config struct {
	DebounceDelay  time.Duration
	PulseDuration  time.Duration
	StripDuration  time.Duration
	RenderInterval time.Duration
	StripLength    int

	ButtonLabel  string
	SenseLabel   string
	OutputLabels [3]string

	// Verbose prints commands and presses to the console. The console usually shares the serial
	// link with the host, so it is off by default.
	Verbose bool
}

// DefaultConfig returns the timings of the pad and the pin labels of the M5 AtomS3 wiring
func DefaultConfig() Config {
	return Config{
		DebounceDelay:  dondonpa.DebounceDelay,
		PulseDuration:  dondonpa.PulseDuration,
		StripDuration:  dondonpa.StripDuration,
		RenderInterval: dondonpa.RenderInterval,
		StripLength:    dondonpa.StripLength,
		ButtonLabel:    "GPIO6",
		SenseLabel:     "GPIO7",
		OutputLabels:   [3]string{"GPIO38", "GPIO39", "GPIO8"},
	}
}
