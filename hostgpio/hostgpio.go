// Package hostgpio runs the pad's control loop on a Linux board: pins come from the GPIO
// character device and the serial link is any byte stream.
package hostgpio

// Lines are GPIO line offsets on one chip
type Lines struct {
	Button  int
	Sense   int
	Outputs [3]int
}

// DefaultChip is the GPIO chip used when none is given
const DefaultChip = "gpiochip0"

// DefaultLines mirrors the microcontroller wiring
var DefaultLines = Lines{
	Button:  6,
	Sense:   7,
	Outputs: [3]int{38, 39, 8},
}
