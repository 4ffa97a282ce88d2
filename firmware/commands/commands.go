package commands

import "github.com/calvinmclean/dondonpa"

type Command struct {
	Flag        byte
	Run         func(Controller)
	Description string
}

// Controller is used to control a device
type Controller interface {
	// Pulse starts the fixed-duration pulse on a channel
	Pulse(dondonpa.Channel)
	// Echo records the last recognized command for the status screen
	Echo(byte)
}

// Serial is the inbound side of the serial link. machine.Serial implements it.
type Serial interface {
	Buffered() int
	ReadByte() (byte, error)
}

var (
	PulseACommand = &Command{
		Flag: dondonpa.CommandPulseA,
		Run: func(c Controller) {
			c.Pulse(dondonpa.ChannelOutputA)
		},
		Description: "Pulse output A.",
	}
	PulseBCommand = &Command{
		Flag: dondonpa.CommandPulseB,
		Run: func(c Controller) {
			c.Pulse(dondonpa.ChannelOutputB)
		},
		Description: "Pulse output B.",
	}
)

var commands = []*Command{
	PulseACommand,
	PulseBCommand,
}

// Intake reads at most one command byte per Poll so a burst of queued commands is drained
// over several loop passes instead of stalling the loop
type Intake struct {
	cmdMap map[byte]*Command
}

func NewIntake() *Intake {
	cmdMap := map[byte]*Command{}
	for _, cmd := range commands {
		cmdMap[cmd.Flag] = cmd
	}
	return &Intake{cmdMap: cmdMap}
}

// Poll consumes one byte if one is available and runs the matching command. It returns the
// command that ran, or nil when there was no byte or the byte is not a command.
func (in *Intake) Poll(s Serial, c Controller) *Command {
	if s.Buffered() == 0 {
		return nil
	}

	b, err := s.ReadByte()
	if err != nil {
		return nil
	}

	cmd, ok := in.cmdMap[b]
	if !ok {
		return nil
	}

	cmd.Run(c)
	c.Echo(cmd.Flag)
	return cmd
}

// Commands returns the recognized commands
func Commands() []*Command {
	return commands
}
