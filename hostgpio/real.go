//go:build linux

package hostgpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"github.com/calvinmclean/dondonpa/firmware/controller"
)

// Board holds the requested lines of one GPIO chip
type Board struct {
	chip    *gpiocdev.Chip
	button  *gpiocdev.Line
	sense   *gpiocdev.Line
	outputs [3]*gpiocdev.Line
}

// NewBoard requests the button and sense lines as pull-up inputs and the outputs driven low
func NewBoard(chipName string, lines Lines) (*Board, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %q: %w", chipName, err)
	}
	b := &Board{chip: chip}

	b.button, err = chip.RequestLine(lines.Button, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("request button line %d: %w", lines.Button, err)
	}

	b.sense, err = chip.RequestLine(lines.Sense, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("request sense line %d: %w", lines.Sense, err)
	}

	for i, offset := range lines.Outputs {
		b.outputs[i], err = chip.RequestLine(offset, gpiocdev.AsOutput(0))
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("request output line %d: %w", offset, err)
		}
	}

	return b, nil
}

// Button returns the button line as a controller.Input
func (b *Board) Button() controller.Input {
	return &lineInput{line: b.button}
}

// Sense returns the sense line as a controller.Input
func (b *Board) Sense() controller.Input {
	return &lineInput{line: b.sense}
}

// Outputs returns the output lines as controller.Outputs
func (b *Board) Outputs() [3]controller.Output {
	var outputs [3]controller.Output
	for i, l := range b.outputs {
		outputs[i] = &lineOutput{line: l}
	}
	return outputs
}

// Close returns every line to a pull-up input before releasing it
func (b *Board) Close() error {
	var errs []error

	lines := append([]*gpiocdev.Line{b.button, b.sense}, b.outputs[:]...)
	for _, l := range lines {
		if l == nil {
			continue
		}
		if err := l.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullUp); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure line %d: %w", l.Offset(), err))
		}
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close line %d: %w", l.Offset(), err))
		}
	}
	if b.chip != nil {
		if err := b.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// lineInput reads a line. A failed read is reported as High, the idle level of a pull-up, so
// it can never look like a press.
type lineInput struct {
	line *gpiocdev.Line
}

func (i *lineInput) Get() bool {
	v, err := i.line.Value()
	if err != nil {
		println("error reading line", i.line.Offset(), err.Error())
		return true
	}
	return v != 0
}

type lineOutput struct {
	line  *gpiocdev.Line
	level bool
}

func (o *lineOutput) Get() bool {
	return o.level
}

func (o *lineOutput) Set(level bool) {
	v := 0
	if level {
		v = 1
	}
	err := o.line.SetValue(v)
	if err != nil {
		println("error setting line", o.line.Offset(), err.Error())
		return
	}
	o.level = level
}
