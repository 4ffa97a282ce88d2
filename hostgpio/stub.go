//go:build !linux

package hostgpio

import (
	"errors"

	"github.com/calvinmclean/dondonpa/firmware/controller"
)

// Board is not available on non-Linux platforms
type Board struct{}

// NewBoard returns an error on non-Linux platforms
func NewBoard(string, Lines) (*Board, error) {
	return nil, errors.New("hostgpio: not supported on this platform (requires Linux)")
}

func (b *Board) Button() controller.Input {
	return nil
}

func (b *Board) Sense() controller.Input {
	return nil
}

func (b *Board) Outputs() [3]controller.Output {
	return [3]controller.Output{}
}

func (b *Board) Close() error {
	return nil
}
