package controller

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"go.bug.st/serial/enumerator"
)

// SerialPortNone runs the controller without a pad attached
const SerialPortNone = "None"

var ErrNoUSBSerial = errors.New("no USB serial ports found")

// GetSerialPorts lists the names of the USB serial ports
func GetSerialPorts() ([]string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("error listing serial ports: %w", err)
	}

	var ports []string
	for _, d := range details {
		if d.IsUSB {
			ports = append(ports, d.Name)
		}
	}
	if len(ports) == 0 {
		return nil, ErrNoUSBSerial
	}
	return ports, nil
}

// nonePort stands in for a serial port when SerialPortNone is selected. Writes are dropped and
// reads block until Close.
type nonePort struct {
	closed    chan struct{}
	closeOnce sync.Once
}

func newNonePort() *nonePort {
	return &nonePort{closed: make(chan struct{})}
}

func (p *nonePort) Read([]byte) (int, error) {
	<-p.closed
	return 0, io.EOF
}

func (p *nonePort) Write(b []byte) (int, error) {
	return len(b), nil
}

func (p *nonePort) Close() error {
	p.closeOnce.Do(func() { close(p.closed) })
	return nil
}
