package controller

import (
	"fmt"
	"os"
	"strconv"
)

// Config selects the serial port used to talk to the pad. BaudRate is kept as a string so it can
// be bound directly to a text entry.
type Config struct {
	SerialPort string
	BaudRate   string
}

// ConfigFromEnv reads SERIAL_PORT and BAUD_RATE. An empty port means the first USB serial port
// and an empty baud rate means 115200.
func ConfigFromEnv() Config {
	return Config{
		SerialPort: os.Getenv("SERIAL_PORT"),
		BaudRate:   os.Getenv("BAUD_RATE"),
	}
}

func (cfg Config) baudRate() (int, error) {
	if cfg.BaudRate == "" {
		return defaultBaudRate, nil
	}

	rate, err := strconv.Atoi(cfg.BaudRate)
	if err != nil {
		return 0, fmt.Errorf("invalid baud rate %q: %w", cfg.BaudRate, err)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("invalid baud rate %q: must be positive", cfg.BaudRate)
	}
	return rate, nil
}
