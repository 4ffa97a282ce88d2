// Command dondonpa-linux runs the pad's control loop on a Linux board. The serial link is
// stdin/stdout and the status screen is written to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calvinmclean/dondonpa/firmware/clock"
	"github.com/calvinmclean/dondonpa/firmware/controller"
	"github.com/calvinmclean/dondonpa/firmware/status"
	"github.com/calvinmclean/dondonpa/hostgpio"
)

func main() {
	chip := flag.String("chip", hostgpio.DefaultChip, "GPIO chip name")
	button := flag.Int("button", hostgpio.DefaultLines.Button, "Line offset of the button")
	sense := flag.Int("sense", hostgpio.DefaultLines.Sense, "Line offset of the sense input")
	outA := flag.Int("out-a", hostgpio.DefaultLines.Outputs[controller.OutputA], "Line offset of output A")
	outB := flag.Int("out-b", hostgpio.DefaultLines.Outputs[controller.OutputB], "Line offset of output B")
	outC := flag.Int("out-c", hostgpio.DefaultLines.Outputs[controller.OutputC], "Line offset of output C")
	render := flag.Duration("render", time.Second, "Status interval on stderr (0 to disable)")
	poll := flag.Duration("poll", time.Millisecond, "Loop interval")
	verbose := flag.Bool("verbose", false, "Log commands and presses to stderr")

	flag.Parse()

	lines := hostgpio.Lines{
		Button:  *button,
		Sense:   *sense,
		Outputs: [3]int{*outA, *outB, *outC},
	}

	if err := run(*chip, lines, *render, *poll, *verbose); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(chip string, lines hostgpio.Lines, render, poll time.Duration, verbose bool) error {
	board, err := hostgpio.NewBoard(chip, lines)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer board.Close()

	cfg := controller.DefaultConfig()
	cfg.Verbose = verbose
	cfg.ButtonLabel = fmt.Sprintf("line %d", lines.Button)
	cfg.SenseLabel = fmt.Sprintf("line %d", lines.Sense)
	for i, offset := range lines.Outputs {
		cfg.OutputLabels[i] = fmt.Sprintf("line %d", offset)
	}

	var painter status.Painter = nopPainter{}
	if render > 0 {
		cfg.RenderInterval = render
		painter = status.NewWriterPainter(os.Stderr)
	}

	serial := hostgpio.NewStreamSerial(os.Stdin, os.Stdout, 64)

	c := controller.New(controller.Hardware{
		Button:  board.Button(),
		Sense:   board.Sense(),
		Outputs: board.Outputs(),
		Strip:   hostgpio.NopStrip{},
		Serial:  serial,
		Painter: painter,
	}, cfg, clock.NewMonotonic())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	log.Printf("running on %s", chip)
	for {
		select {
		case <-ctx.Done():
			log.Printf("shutting down")
			return serial.Err()
		case <-ticker.C:
			c.Tick()
		}
	}
}

type nopPainter struct{}

func (nopPainter) Paint(status.Frame) error {
	return nil
}
