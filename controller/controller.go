// Package controller talks to the pad firmware over serial: it sends don/pa commands and reports
// button presses
package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"go.bug.st/serial"

	"github.com/calvinmclean/dondonpa"
)

const defaultBaudRate = dondonpa.BaudRate

// PressLine is written to the output of Run for every press reported by the pad
const PressLine = "press"

// Controller owns the serial connection to the pad
type Controller struct {
	port io.ReadWriteCloser

	writeMtx sync.Mutex
	presses  atomic.Int64
}

// NewFromEnv creates a Controller using ConfigFromEnv
func NewFromEnv() (*Controller, error) {
	return New(ConfigFromEnv())
}

// New opens the configured serial port. When no port is configured, the first USB serial port
// is used.
func New(cfg Config) (*Controller, error) {
	if cfg.SerialPort == SerialPortNone {
		return NewWithPort(newNonePort()), nil
	}

	if cfg.SerialPort == "" {
		ports, err := GetSerialPorts()
		if err != nil {
			return nil, fmt.Errorf("error finding serial port: %w", err)
		}
		cfg.SerialPort = ports[0]
	}

	baudRate, err := cfg.baudRate()
	if err != nil {
		return nil, err
	}

	port, err := serial.Open(cfg.SerialPort, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("error opening serial port %q: %w", cfg.SerialPort, err)
	}

	return NewWithPort(port), nil
}

// NewWithPort uses an already open connection to the pad
func NewWithPort(port io.ReadWriteCloser) *Controller {
	return &Controller{port: port}
}

// Close closes the serial port, which also stops a running Run
func (c *Controller) Close() error {
	return c.port.Close()
}

// Presses returns the number of presses read from the pad so far
func (c *Controller) Presses() int64 {
	return c.presses.Load()
}

// Send writes the command byte for cmd to the pad
func (c *Controller) Send(cmd dondonpa.HostCommand) error {
	b := cmd.Byte()
	if b == 0 {
		return fmt.Errorf("error sending %q: %w", cmd.String(), dondonpa.ErrUnknownCommand)
	}

	c.writeMtx.Lock()
	defer c.writeMtx.Unlock()

	_, err := c.port.Write([]byte{b})
	if err != nil {
		return fmt.Errorf("error writing %q: %w", cmd.String(), err)
	}
	return nil
}

// Run sends one command per line read from in and writes a PressLine to out for every press
// reported by the pad. Other lines from the pad are copied to out unchanged. When in is
// exhausted, presses are still reported. Run returns when the context is done, the serial port
// is closed, or reading or writing fails.
func (c *Controller) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := &lockedWriter{w: out}

	portErr := make(chan error, 1)
	inputErr := make(chan error, 1)
	go func() {
		portErr <- c.readPort(ctx, w)
	}()
	go func() {
		inputErr <- c.readInput(ctx, in, w)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-portErr:
			return err
		case err := <-inputErr:
			if err != nil {
				return err
			}
			inputErr = nil
		}
	}
}

func (c *Controller) readPort(ctx context.Context, out io.Writer) error {
	scanner := bufio.NewScanner(c.port)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if dondonpa.IsPressMessage(line) {
			c.presses.Add(1)
			line = PressLine
		}

		_, err := fmt.Fprintln(out, line)
		if err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	err := scanner.Err()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("error reading serial port: %w", err)
	}
	return nil
}

func (c *Controller) readInput(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := dondonpa.ParseHostCommand(line)
		if errors.Is(err, dondonpa.ErrUnknownCommand) {
			_, err = fmt.Fprintf(out, "%v: %q\n", err, line)
			if err != nil {
				return fmt.Errorf("error writing output: %w", err)
			}
			continue
		}

		err = c.Send(cmd)
		if err != nil {
			return err
		}
	}

	err := scanner.Err()
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

type lockedWriter struct {
	mtx sync.Mutex
	w   io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mtx.Lock()
	defer lw.mtx.Unlock()
	return lw.w.Write(p)
}
