package dondonpa

import (
	"errors"
	"strings"
	"time"
)

const BaudRate = 115200

// Serial protocol. The host sends a single command byte, the firmware answers each physical
// button press with PressMessage followed by "\r\n"
const (
	CommandPulseA byte = '1'
	CommandPulseB byte = '2'

	PressMessage = "1"
)

// Timings shared by the firmware and the Linux runner
const (
	DebounceDelay  = 50 * time.Millisecond
	PulseDuration  = 100 * time.Millisecond
	StripDuration  = 100 * time.Millisecond
	RenderInterval = 10 * time.Millisecond
)

// StripLength is the number of pixels on the pad's LED strip
const StripLength = 16

// Channel identifies something that is switched on for a fixed window and then switched off
type Channel int

const (
	ChannelUnknown Channel = iota
	ChannelOutputA
	ChannelOutputB
	ChannelStrip
)

func (c Channel) String() string {
	switch c {
	case ChannelOutputA:
		return "OutputA"
	case ChannelOutputB:
		return "OutputB"
	case ChannelStrip:
		return "Strip"
	default:
		fallthrough
	case ChannelUnknown:
		return "Unknown"
	}
}

// HostCommand is a pad action that the host can request over the serial link
type HostCommand int

const (
	HostCommandUnknown HostCommand = iota
	HostCommandDon
	HostCommandPa
)

var ErrUnknownCommand = errors.New("unknown command")

func (hc HostCommand) String() string {
	switch hc {
	case HostCommandDon:
		return "don"
	case HostCommandPa:
		return "pa"
	default:
		return "unknown"
	}
}

// Byte returns the serial command byte sent for this HostCommand, or 0 if there is none
func (hc HostCommand) Byte() byte {
	switch hc {
	case HostCommandDon:
		return CommandPulseA
	case HostCommandPa:
		return CommandPulseB
	default:
		return 0
	}
}

// ParseHostCommand accepts the command names ("don", "pa") or the raw command bytes ("1", "2")
func ParseHostCommand(s string) (HostCommand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "don", string(CommandPulseA):
		return HostCommandDon, nil
	case "pa", string(CommandPulseB):
		return HostCommandPa, nil
	default:
		return HostCommandUnknown, ErrUnknownCommand
	}
}

// IsPressMessage reports whether a line read from the firmware announces a button press
func IsPressMessage(line string) bool {
	return strings.TrimRight(line, "\r\n") == PressMessage
}
