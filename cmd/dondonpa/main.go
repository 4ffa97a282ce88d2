package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/calvinmclean/dondonpa/controller"
	"github.com/calvinmclean/dondonpa/ui"
)

func main() {
	cfg := controller.ConfigFromEnv()

	var baudRate int
	flag.StringVar(&cfg.SerialPort, "port", cfg.SerialPort, "Serial port of the pad. Default is the first USB serial port, or \"None\" to run without one")
	flag.IntVar(&baudRate, "baud", 0, "Serial baud rate. Default is BAUD_RATE or 115200")
	flag.Parse()

	if baudRate != 0 {
		cfg.BaudRate = strconv.Itoa(baudRate)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if os.Getenv("ENABLE_UI") == "true" {
		runUI(ctx, cfg)
		return
	}

	runCLI(ctx, cfg)
}

func runUI(ctx context.Context, cfg controller.Config) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	padUI := ui.NewPadUI()

	var c *controller.Controller
	defer func() {
		if c != nil {
			c.Close()
		}
	}()

	connect := func(cfg controller.Config) (io.Writer, error) {
		var err error
		c, err = controller.New(cfg)
		if err != nil {
			return nil, err
		}

		r, w := io.Pipe()

		// read from Stdin also
		go func() {
			io.Copy(w, os.Stdin)
		}()

		go func() {
			defer cancel()
			err := c.Run(ctx, r, io.MultiWriter(os.Stdout, padUI))
			if err != nil {
				log.Printf("error running controller: %v", err)
			}
		}()

		return w, nil
	}

	padUI.Run(ctx, &cfg, connect)
}

func runCLI(ctx context.Context, cfg controller.Config) {
	c, err := controller.New(cfg)
	if err != nil {
		log.Fatalf("error creating controller: %v", err)
	}
	defer c.Close()

	err = c.Run(ctx, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("error running controller: %v", err)
	}
}
