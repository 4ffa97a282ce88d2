// Package controller runs the pad's cooperative control loop. A Controller owns all of the
// device state and is only ever touched by the loop, so nothing here is locked.
package controller

import (
	"time"

	"github.com/calvinmclean/dondonpa"
	"github.com/calvinmclean/dondonpa/firmware/clock"
	"github.com/calvinmclean/dondonpa/firmware/commands"
	"github.com/calvinmclean/dondonpa/firmware/debounce"
	"github.com/calvinmclean/dondonpa/firmware/pulse"
	"github.com/calvinmclean/dondonpa/firmware/status"
)

var pressLine = []byte(dondonpa.PressMessage + "\r\n")

// Controller is the device state of the pad
type Controller struct {
	hw    Hardware
	cfg   Config
	clock clock.Clock

	intake   *commands.Intake
	button   *debounce.Button
	pulses   *pulse.Scheduler
	renderer *status.Renderer

	// now is the timestamp of the current loop iteration
	now time.Duration

	lastCommand   byte
	lastCommandAt time.Duration
	commandSeen   bool

	presses int
}

var _ commands.Controller = &Controller{}

// New drives every output low, clears the strip and returns a Controller ready to Tick
func New(hw Hardware, cfg Config, clk clock.Clock) *Controller {
	for _, out := range hw.Outputs {
		out.Set(false)
	}

	strip := newStripActuator(hw.Strip, cfg.StripLength)
	err := strip.Off()
	if err != nil {
		println("error clearing strip:", err.Error())
	}

	return &Controller{
		hw:     hw,
		cfg:    cfg,
		clock:  clk,
		intake: commands.NewIntake(),
		button: debounce.New(cfg.DebounceDelay),
		pulses: pulse.New(
			pulse.Config{Channel: dondonpa.ChannelOutputA, Duration: cfg.PulseDuration, Actuator: pinActuator{hw.Outputs[OutputA]}},
			pulse.Config{Channel: dondonpa.ChannelOutputB, Duration: cfg.PulseDuration, Actuator: pinActuator{hw.Outputs[OutputB]}},
			pulse.Config{Channel: dondonpa.ChannelStrip, Duration: cfg.StripDuration, Actuator: strip},
		),
		renderer: status.NewRenderer(cfg.RenderInterval, hw.Painter),
	}
}

// Run loops forever
func (c *Controller) Run() {
	if c.cfg.Verbose {
		println(c.ts(), "Running...")
	}
	for {
		c.Tick()
	}
}

// Tick runs one loop iteration: command intake, button sampling, pulse expiry and then the
// status screen
func (c *Controller) Tick() {
	c.now = c.clock.Now()

	c.intake.Poll(c.hw.Serial, c)

	if c.button.Sample(c.hw.Button.Get(), c.now) == debounce.EdgePress {
		c.Press()
	}

	err := c.pulses.Tick(c.now)
	if err != nil {
		println(c.ts(), "error expiring pulse:", err.Error())
	}

	_, err = c.renderer.Render(c.now, c.Snapshot)
	if err != nil {
		println(c.ts(), "error rendering status:", err.Error())
	}
}

// Pulse starts the fixed-duration pulse on a channel
func (c *Controller) Pulse(ch dondonpa.Channel) {
	err := c.pulses.Fire(ch, c.now)
	if err != nil {
		println(c.ts(), "error firing", ch.String()+":", err.Error())
	}
}

// Echo records the last recognized serial command
func (c *Controller) Echo(b byte) {
	c.lastCommand = b
	c.lastCommandAt = c.now
	c.commandSeen = true

	if c.cfg.Verbose {
		println(c.ts(), "Command", string(b))
	}
}

// Press runs the button action: both outputs and the strip are pulsed together and the host
// is told about the press
func (c *Controller) Press() {
	c.presses++

	c.Pulse(dondonpa.ChannelOutputA)
	c.Pulse(dondonpa.ChannelStrip)
	c.Pulse(dondonpa.ChannelOutputB)

	_, err := c.hw.Serial.Write(pressLine)
	if err != nil {
		println(c.ts(), "error writing press:", err.Error())
	}

	if c.cfg.Verbose {
		println(c.ts(), "Press", c.presses)
	}
}

// Snapshot reads the live pin levels and flags for the status screen
func (c *Controller) Snapshot() status.Snapshot {
	s := status.Snapshot{
		Inputs: []status.Pin{
			{Label: c.cfg.ButtonLabel, High: c.hw.Button.Get()},
			{Label: c.cfg.SenseLabel, High: c.hw.Sense.Get()},
		},
		StripActive: c.pulses.Active(dondonpa.ChannelStrip),
		Serial:      c.lastCommand,
		SerialSeen:  c.commandSeen,
	}
	for i, out := range c.hw.Outputs {
		s.Outputs = append(s.Outputs, status.Pin{Label: c.cfg.OutputLabels[i], High: out.Get()})
	}
	return s
}

// Presses returns how many presses have fired since boot
func (c *Controller) Presses() int {
	return c.presses
}

// LastCommand returns the last recognized serial command and when it arrived
func (c *Controller) LastCommand() (byte, time.Duration, bool) {
	return c.lastCommand, c.lastCommandAt, c.commandSeen
}

// Active reports whether a channel's pulse is running
func (c *Controller) Active(ch dondonpa.Channel) bool {
	return c.pulses.Active(ch)
}

// ButtonState returns the committed debounce state of the button
func (c *Controller) ButtonState() debounce.State {
	return c.button.State()
}

// ts returns the uptime timestamp for logging
func (c *Controller) ts() string {
	return "[" + c.now.String() + "]"
}
