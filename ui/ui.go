// Package ui is a desktop panel for the pad: it sends don/pa commands and shows presses
package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/calvinmclean/dondonpa"
	"github.com/calvinmclean/dondonpa/controller"
)

const appID = "io.github.calvinmclean.dondonpa"

// PadUI is the desktop panel. It is an io.Writer so it can be given the output of
// controller.Run and count the press lines.
type PadUI struct {
	app fyne.App

	tally      *tally
	pressLabel *widget.Label
	sentLabel  *widget.Label
	lastPress  *timer

	mtx     sync.Mutex
	partial []byte
}

func NewPadUI() *PadUI {
	return newPadUI(app.NewWithID(appID))
}

func newPadUI(a fyne.App) *PadUI {
	t := newTally()
	return &PadUI{
		app:        a,
		tally:      t,
		pressLabel: widget.NewLabel(t.pressText()),
		sentLabel:  widget.NewLabel(t.sentText()),
		lastPress:  newTimer(),
	}
}

// Write receives lines from controller.Run
func (ui *PadUI) Write(p []byte) (int, error) {
	presses := ui.countPresses(p)
	for range presses {
		now := time.Now()
		fyne.Do(func() {
			ui.press(now)
		})
	}
	return len(p), nil
}

// countPresses returns the number of complete press lines in p. Partial lines are kept until
// their newline arrives.
func (ui *PadUI) countPresses(p []byte) int {
	ui.mtx.Lock()
	defer ui.mtx.Unlock()

	ui.partial = append(ui.partial, p...)
	var presses int
	for {
		i := bytes.IndexByte(ui.partial, '\n')
		if i < 0 {
			return presses
		}
		line := strings.TrimSpace(string(ui.partial[:i]))
		ui.partial = ui.partial[i+1:]
		if line == controller.PressLine {
			presses++
		}
	}
}

func (ui *PadUI) press(now time.Time) {
	ui.tally.press()
	ui.pressLabel.SetText(ui.tally.pressText())
	ui.lastPress.Reset(now)
}

// Run shows the configuration window and then the pad. connect is called with the submitted
// configuration and returns the writer that commands are sent to. Run blocks until the app quits
// or the context is done.
func (ui *PadUI) Run(ctx context.Context, cfg *controller.Config, connect func(controller.Config) (io.Writer, error)) {
	cw := NewConfigWindow(ui.app)
	cw.OnSubmit = func() error {
		w, err := connect(*cfg)
		if err != nil {
			return err
		}
		ui.showPad(w)
		return nil
	}
	cw.Show(cfg)

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			ui.app.Quit()
		})
	}()

	ui.app.Run()
	ui.lastPress.Stop()
}

func (ui *PadUI) showPad(w io.Writer) {
	window := ui.app.NewWindow("Don Don Pa")

	c := &controllerWrapper{writer: w, tally: ui.tally}
	send := func(cmd dondonpa.HostCommand) func() {
		return func() {
			err := c.Send(cmd)
			if err != nil {
				showError(ui.app, window, err)
				return
			}
			ui.sentLabel.SetText(ui.tally.sentText())
		}
	}

	ui.lastPress.Go()

	content := container.NewVBox(
		container.NewHBox(
			container.NewPadded(ui.pressLabel),
			layout.NewSpacer(),
			container.NewPadded(ui.lastPress.text),
		),
		container.NewGridWithColumns(2,
			widget.NewButton("Don", send(dondonpa.HostCommandDon)),
			widget.NewButton("Pa", send(dondonpa.HostCommandPa)),
		),
		ui.sentLabel,
	)

	window.SetContent(content)
	window.Resize(fyne.NewSize(300, 150))
	window.SetMaster()
	window.Show()
}
