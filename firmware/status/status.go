// Package status draws the fixed-layout status screen. A Renderer throttles how often the
// screen is redrawn and reads the live values only when it is allowed to draw; every field is
// redrawn every time.
package status

import (
	"time"
)

// Pin is a labeled pin level shown on the screen
type Pin struct {
	Label string
	High  bool
}

// Snapshot holds the values shown on one frame
type Snapshot struct {
	Inputs      []Pin
	Outputs     []Pin
	StripActive bool

	// Serial is the last recognized command. SerialSeen is false until one arrives.
	Serial     byte
	SerialSeen bool
}

// Line is a single row of text. Y is the top of the row.
type Line struct {
	X, Y int16
	Text string
}

// Frame is a laid out screen
type Frame struct {
	Lines []Line
	// RuleY is where the horizontal rule under the header is drawn
	RuleY int16
}

const (
	Margin     int16 = 5
	LineHeight int16 = 10
)

const (
	headerText  = "GPIO Status"
	outputsText = "Output Status:"
	noDataText  = "No data"
)

// Layout places the snapshot on the screen: a header and its rule, the inputs, the outputs
// under a caption, the LED strip flag and the last serial command
func Layout(s Snapshot) Frame {
	f := Frame{
		Lines: []Line{{X: Margin, Y: Margin, Text: headerText}},
		RuleY: Margin + LineHeight,
	}

	y := f.RuleY + LineHeight
	add := func(text string) {
		f.Lines = append(f.Lines, Line{X: Margin, Y: y, Text: text})
		y += LineHeight
	}

	for _, in := range s.Inputs {
		add("IN " + in.Label + ": " + levelStr(in.High))
	}

	y += LineHeight
	add(outputsText)
	for _, out := range s.Outputs {
		add(out.Label + ": " + levelStr(out.High))
	}

	y += LineHeight
	if s.StripActive {
		add("LEDs: ON")
	} else {
		add("LEDs: OFF")
	}

	if s.SerialSeen {
		add("Serial: " + string(s.Serial))
	} else {
		add("Serial: " + noDataText)
	}

	return f
}

func levelStr(high bool) string {
	if high {
		return "HIGH"
	}
	return "LOW"
}

// Painter puts a Frame on a screen
type Painter interface {
	Paint(Frame) error
}

// Renderer redraws the screen at most once per interval
type Renderer struct {
	interval   time.Duration
	lastRender time.Duration
	painter    Painter
}

func NewRenderer(interval time.Duration, painter Painter) *Renderer {
	return &Renderer{
		interval: interval,
		painter:  painter,
	}
}

// Render draws a fresh snapshot from read if at least interval has passed since the last
// render. It reports whether it drew.
func (r *Renderer) Render(now time.Duration, read func() Snapshot) (bool, error) {
	if now-r.lastRender < r.interval {
		return false, nil
	}
	r.lastRender = now

	return true, r.painter.Paint(Layout(read()))
}
