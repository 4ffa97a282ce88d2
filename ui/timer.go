package ui

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const timerInitText = "--:--.---"

// timer shows the time since it was last Reset. It stays blank until the first Reset.
type timer struct {
	startTime time.Time
	mtx       *sync.Mutex
	text      *canvas.Text
	started   chan struct{}
	startOnce *sync.Once
	stop      chan struct{}
}

func newTimer() *timer {
	return &timer{
		mtx:       &sync.Mutex{},
		text:      canvas.NewText(timerInitText, nil),
		started:   make(chan struct{}),
		startOnce: &sync.Once{},
		stop:      make(chan struct{}),
	}
}

func (t *timer) Reset(start time.Time) {
	t.mtx.Lock()
	t.startTime = start
	t.mtx.Unlock()

	t.startOnce.Do(func() { close(t.started) })
}

func (t *timer) Stop() {
	close(t.stop)
}

func (t *timer) Go() {
	go func() {
		select {
		case <-t.started:
		case <-t.stop:
			return
		}

		ticker := time.NewTicker(64 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
			}
			fyne.Do(func() {
				t.mtx.Lock()
				t.text.Text = formatElapsed(time.Since(t.startTime))
				t.mtx.Unlock()
				t.text.Refresh()
			})
		}
	}()
}

func formatElapsed(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) % 60
	millis := int(elapsed.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
