package controller

import (
	"image/color"
	"testing"
	"time"

	"github.com/calvinmclean/dondonpa"
	"github.com/calvinmclean/dondonpa/firmware/clock"
	"github.com/calvinmclean/dondonpa/firmware/debounce"
	"github.com/calvinmclean/dondonpa/firmware/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPainter struct {
	frames []status.Frame
}

func (p *recordingPainter) Paint(f status.Frame) error {
	p.frames = append(p.frames, f)
	return nil
}

func (p *recordingPainter) last() status.Frame {
	return p.frames[len(p.frames)-1]
}

type rig struct {
	c       *Controller
	clk     *clock.Fake
	button  *FakePin
	sense   *FakePin
	outs    [3]*FakePin
	strip   *FakeStrip
	serial  *FakeSerial
	painter *recordingPainter
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		clk:     &clock.Fake{},
		button:  &FakePin{Level: true},
		sense:   &FakePin{Level: true},
		outs:    [3]*FakePin{{Level: true}, {Level: true}, {Level: true}},
		strip:   &FakeStrip{},
		serial:  &FakeSerial{},
		painter: &recordingPainter{},
	}
	r.c = New(Hardware{
		Button:  r.button,
		Sense:   r.sense,
		Outputs: [3]Output{r.outs[0], r.outs[1], r.outs[2]},
		Strip:   r.strip,
		Serial:  r.serial,
		Painter: r.painter,
	}, DefaultConfig(), r.clk)

	// let the released button settle
	r.runUntil(ms(60))
	require.Equal(t, debounce.StateStableHigh, r.c.ButtonState())
	return r
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func (r *rig) tickAt(now time.Duration) {
	r.clk.Set(now)
	r.c.Tick()
}

// runUntil ticks every millisecond up to and including end
func (r *rig) runUntil(end time.Duration) {
	for now := r.clk.Now() + time.Millisecond; now <= end; now += time.Millisecond {
		r.tickAt(now)
	}
}

func (r *rig) send(now time.Duration, b byte) {
	r.serial.In = append(r.serial.In, b)
	r.tickAt(now)
}

func allPixels(c color.RGBA) []color.RGBA {
	pixels := make([]color.RGBA, dondonpa.StripLength)
	for i := range pixels {
		pixels[i] = c
	}
	return pixels
}

func TestNewDrivesOutputsLow(t *testing.T) {
	r := newRig(t)

	for i, out := range r.outs {
		assert.False(t, out.Level, "output %d", i)
	}
	require.NotEmpty(t, r.strip.Writes)
	assert.Equal(t, allPixels(color.RGBA{}), r.strip.Writes[0])
}

func TestCommandPulsesOutputA(t *testing.T) {
	r := newRig(t)

	r.send(ms(100), '1')
	assert.True(t, r.outs[OutputA].Level)
	assert.False(t, r.outs[OutputB].Level)
	assert.True(t, r.c.Active(dondonpa.ChannelOutputA))

	r.runUntil(ms(199))
	assert.True(t, r.outs[OutputA].Level)

	r.tickAt(ms(200))
	assert.False(t, r.outs[OutputA].Level)
	assert.False(t, r.c.Active(dondonpa.ChannelOutputA))

	b, at, ok := r.c.LastCommand()
	assert.True(t, ok)
	assert.Equal(t, byte('1'), b)
	assert.Equal(t, ms(100), at)
}

func TestCommandBDoesNotTouchA(t *testing.T) {
	r := newRig(t)

	r.send(ms(100), '1')
	r.runUntil(ms(149))
	r.send(ms(150), '2')
	assert.True(t, r.outs[OutputA].Level)
	assert.True(t, r.outs[OutputB].Level)

	r.runUntil(ms(199))
	r.tickAt(ms(200))
	assert.False(t, r.outs[OutputA].Level, "A expires on its own schedule")
	assert.True(t, r.outs[OutputB].Level)

	r.runUntil(ms(249))
	assert.True(t, r.outs[OutputB].Level)
	r.tickAt(ms(250))
	assert.False(t, r.outs[OutputB].Level)
}

func TestQueuedCommandsDrainOnePerTick(t *testing.T) {
	r := newRig(t)

	r.serial.In = []byte("x2")
	r.tickAt(ms(100))
	assert.False(t, r.outs[OutputB].Level, "unknown byte is consumed first")
	_, _, ok := r.c.LastCommand()
	assert.False(t, ok)

	r.tickAt(ms(101))
	assert.True(t, r.outs[OutputB].Level)
	assert.Empty(t, r.serial.In)
}

func TestPressCycle(t *testing.T) {
	r := newRig(t)

	r.runUntil(ms(99))
	r.button.Level = false
	r.runUntil(ms(149))
	assert.Equal(t, 0, r.c.Presses())
	assert.False(t, r.outs[OutputA].Level)

	r.tickAt(ms(150))
	assert.Equal(t, 1, r.c.Presses())
	assert.True(t, r.outs[OutputA].Level)
	assert.True(t, r.outs[OutputB].Level)
	assert.True(t, r.c.Active(dondonpa.ChannelStrip))
	assert.Equal(t, allPixels(color.RGBA{R: 255, G: 255, B: 255}), r.strip.Last())
	assert.Equal(t, "1\r\n", r.serial.Out.String())

	r.runUntil(ms(249))
	assert.True(t, r.outs[OutputA].Level)
	assert.True(t, r.outs[OutputB].Level)
	assert.True(t, r.c.Active(dondonpa.ChannelStrip))

	r.tickAt(ms(250))
	assert.False(t, r.outs[OutputA].Level)
	assert.False(t, r.outs[OutputB].Level)
	assert.False(t, r.c.Active(dondonpa.ChannelStrip))
	assert.Equal(t, allPixels(color.RGBA{}), r.strip.Last())

	r.button.Level = true
	r.runUntil(ms(400))
	assert.Equal(t, 1, r.c.Presses())
	assert.Equal(t, "1\r\n", r.serial.Out.String())
}

func TestHoldNeverRefires(t *testing.T) {
	r := newRig(t)

	r.button.Level = false
	r.runUntil(5 * time.Second)
	assert.Equal(t, 1, r.c.Presses())
	assert.Equal(t, "1\r\n", r.serial.Out.String())

	r.button.Level = true
	r.runUntil(5*time.Second + ms(100))
	r.button.Level = false
	r.runUntil(5*time.Second + ms(200))
	assert.Equal(t, 2, r.c.Presses())
	assert.Equal(t, "1\r\n1\r\n", r.serial.Out.String())
}

func TestBouncyPressFiresOnce(t *testing.T) {
	r := newRig(t)

	for now := ms(100); now < ms(140); now += ms(4) {
		r.button.Level = !r.button.Level
		r.runUntil(now)
	}
	r.button.Level = false
	r.runUntil(ms(400))

	assert.Equal(t, 1, r.c.Presses())
}

func TestOutputCIsNeverDriven(t *testing.T) {
	r := newRig(t)

	r.send(ms(100), '1')
	r.send(ms(101), '2')
	r.button.Level = false
	r.runUntil(ms(400))

	assert.False(t, r.outs[OutputC].Level)
	assert.Equal(t, 1, r.outs[OutputC].Sets, "only the reset in New")
}

func TestStatusScreen(t *testing.T) {
	r := newRig(t)

	// first frame is drawn once the first interval elapses
	require.Len(t, r.painter.frames, 6)
	assert.Equal(t, "Serial: No data", r.painter.last().Lines[8].Text)

	r.sense.Level = false
	r.send(ms(100), '1')

	f := r.painter.last()
	assert.Len(t, r.painter.frames, 7)
	assert.Equal(t, "IN GPIO6: HIGH", f.Lines[1].Text)
	assert.Equal(t, "IN GPIO7: LOW", f.Lines[2].Text)
	assert.Equal(t, "GPIO38: HIGH", f.Lines[4].Text)
	assert.Equal(t, "GPIO39: LOW", f.Lines[5].Text)
	assert.Equal(t, "GPIO8: LOW", f.Lines[6].Text)
	assert.Equal(t, "LEDs: OFF", f.Lines[7].Text)
	assert.Equal(t, "Serial: 1", f.Lines[8].Text)

	r.runUntil(time.Second)
	assert.Len(t, r.painter.frames, 97)
}

func TestStripErrorDoesNotStopPress(t *testing.T) {
	r := newRig(t)
	r.strip.Err = assert.AnError

	r.button.Level = false
	r.runUntil(ms(150))

	assert.Equal(t, 1, r.c.Presses())
	assert.True(t, r.outs[OutputA].Level)
	assert.True(t, r.outs[OutputB].Level)

	r.runUntil(ms(250))
	assert.False(t, r.c.Active(dondonpa.ChannelStrip))
}
