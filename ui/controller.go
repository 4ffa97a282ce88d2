package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/calvinmclean/dondonpa"
)

// controllerWrapper writes commands in the line format read by controller.Run
type controllerWrapper struct {
	mtx    sync.Mutex
	writer io.Writer
	tally  *tally
}

func (c *controllerWrapper) Send(cmd dondonpa.HostCommand) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	_, err := fmt.Fprintf(c.writer, "%s\n", cmd)
	if err != nil {
		return fmt.Errorf("error sending %s: %w", cmd, err)
	}
	c.tally.send(cmd)
	return nil
}
