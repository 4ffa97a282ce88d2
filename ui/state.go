package ui

import (
	"fmt"

	"github.com/calvinmclean/dondonpa"
)

// tally counts what has happened since the panel opened
type tally struct {
	presses int
	sent    map[dondonpa.HostCommand]int
	last    dondonpa.HostCommand
}

func newTally() *tally {
	return &tally{sent: map[dondonpa.HostCommand]int{}}
}

func (t *tally) press() {
	t.presses++
}

func (t *tally) send(cmd dondonpa.HostCommand) {
	t.sent[cmd]++
	t.last = cmd
}

func (t *tally) pressText() string {
	return fmt.Sprintf("Presses: %d", t.presses)
}

func (t *tally) sentText() string {
	if t.last == dondonpa.HostCommandUnknown {
		return "Sent: -"
	}
	return fmt.Sprintf(
		"Sent: %s (don %d / pa %d)",
		t.last,
		t.sent[dondonpa.HostCommandDon],
		t.sent[dondonpa.HostCommandPa],
	)
}
