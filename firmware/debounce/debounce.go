// Package debounce turns raw readings of an active-low button into clean press edges.
//
// The button is modeled as a three state machine. Unstable is the power-up state where no level
// has been committed yet. A raw level is committed once it has held steady for the debounce delay,
// and the move between committed states is looked up in a single transition table.
package debounce

import "time"

// State is the committed state of the button
type State uint8

const (
	StateUnstable State = iota
	StateStableHigh
	StateStableLow
)

func (s State) String() string {
	switch s {
	case StateStableHigh:
		return "Stable-High"
	case StateStableLow:
		return "Stable-Low"
	default:
		return "Unstable"
	}
}

// Edge is the result of committing a new state
type Edge uint8

const (
	EdgeNone Edge = iota
	// EdgePress is a clean falling edge from Stable-High into Stable-Low
	EdgePress
	// EdgeRelease is a clean rising edge from Stable-Low into Stable-High
	EdgeRelease
)

func (e Edge) String() string {
	switch e {
	case EdgePress:
		return "Press"
	case EdgeRelease:
		return "Release"
	default:
		return "None"
	}
}

const (
	levelLow = iota
	levelHigh
)

type transition struct {
	next State
	edge Edge
}

// transitions is indexed by the committed state and the settled raw level. A button held
// down at power-up settles into Stable-Low without a press.
var transitions = [3][2]transition{
	StateUnstable: {
		levelLow:  {StateStableLow, EdgeNone},
		levelHigh: {StateStableHigh, EdgeNone},
	},
	StateStableHigh: {
		levelLow:  {StateStableLow, EdgePress},
		levelHigh: {StateStableHigh, EdgeNone},
	},
	StateStableLow: {
		levelLow:  {StateStableLow, EdgeNone},
		levelHigh: {StateStableHigh, EdgeRelease},
	},
}

// Button tracks a single pull-up, active-low input
type Button struct {
	delay time.Duration

	state State

	// raw is the previously observed raw level and lastChange is when it last changed
	raw        bool
	lastChange time.Duration

	// armed is the re-entry guard. It is cleared by a press and set again only once the
	// button is committed High
	armed bool
}

// New creates a Button that commits a level after it is held for delay. The raw level starts
// High, which is the idle level of a pull-up input.
func New(delay time.Duration) *Button {
	return &Button{
		delay: delay,
		state: StateUnstable,
		raw:   true,
		armed: true,
	}
}

// Sample feeds one raw reading taken at now. It returns EdgePress at most once per physical
// press, no matter how long the button is held or how much it bounces.
func (b *Button) Sample(level bool, now time.Duration) Edge {
	if level != b.raw {
		b.raw = level
		b.lastChange = now
	}

	edge := EdgeNone
	if now-b.lastChange >= b.delay {
		t := transitions[b.state][levelIndex(level)]
		b.state = t.next
		edge = t.edge
	}

	if edge == EdgePress {
		if !b.armed {
			edge = EdgeNone
		}
		b.armed = false
	}

	if b.state == StateStableHigh {
		b.armed = true
	}

	return edge
}

// State returns the committed state
func (b *Button) State() State {
	return b.state
}

// Pressed reports whether the committed state is Stable-Low
func (b *Button) Pressed() bool {
	return b.state == StateStableLow
}

// Armed reports whether the next press will be reported
func (b *Button) Armed() bool {
	return b.armed
}

// Settling reports whether the last raw reading disagrees with the committed state
func (b *Button) Settling() bool {
	switch b.state {
	case StateStableHigh:
		return !b.raw
	case StateStableLow:
		return b.raw
	default:
		return true
	}
}

func levelIndex(level bool) int {
	if level {
		return levelHigh
	}
	return levelLow
}
