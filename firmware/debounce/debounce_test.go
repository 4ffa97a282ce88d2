package debounce

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	high = true
	low  = false
)

// feed samples level every millisecond in [from, to) and returns the edges observed
func feed(b *Button, level bool, from, to time.Duration) []Edge {
	var edges []Edge
	for now := from; now < to; now += time.Millisecond {
		if e := b.Sample(level, now); e != EdgeNone {
			edges = append(edges, e)
		}
	}
	return edges
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestStartupReleased(t *testing.T) {
	b := New(ms(50))
	assert.Equal(t, StateUnstable, b.State())

	assert.Empty(t, feed(b, high, 0, ms(50)))
	assert.Equal(t, StateUnstable, b.State())

	assert.Equal(t, EdgeNone, b.Sample(high, ms(50)))
	assert.Equal(t, StateStableHigh, b.State())
	assert.True(t, b.Armed())
	assert.False(t, b.Settling())
}

func TestCleanPress(t *testing.T) {
	b := New(ms(50))
	feed(b, high, 0, ms(100))

	assert.Empty(t, feed(b, low, ms(100), ms(150)))
	assert.Equal(t, StateStableHigh, b.State())
	assert.True(t, b.Settling())

	assert.Equal(t, EdgePress, b.Sample(low, ms(150)))
	assert.Equal(t, StateStableLow, b.State())
	assert.True(t, b.Pressed())
	assert.False(t, b.Armed())
}

func TestBounceFiresOnce(t *testing.T) {
	b := New(ms(50))
	feed(b, high, 0, ms(100))

	var edges []Edge
	level := low
	for now := ms(100); now < ms(130); now += ms(5) {
		edges = append(edges, feed(b, level, now, now+ms(5))...)
		level = !level
	}
	assert.Empty(t, edges, "no edge while bouncing")

	// last bounce landed High at 125ms, so settle Low from 130ms
	edges = feed(b, low, ms(130), ms(300))
	assert.Equal(t, []Edge{EdgePress}, edges)
}

func TestHoldDoesNotRefire(t *testing.T) {
	b := New(ms(50))
	feed(b, high, 0, ms(100))

	edges := feed(b, low, ms(100), 5*time.Second)
	assert.Equal(t, []Edge{EdgePress}, edges)
	assert.False(t, b.Armed())

	edges = feed(b, high, 5*time.Second, 5*time.Second+ms(100))
	assert.Equal(t, []Edge{EdgeRelease}, edges)
	assert.True(t, b.Armed())

	edges = feed(b, low, 5*time.Second+ms(100), 6*time.Second)
	assert.Equal(t, []Edge{EdgePress}, edges)
}

func TestShortGlitchIgnored(t *testing.T) {
	b := New(ms(50))
	feed(b, high, 0, ms(100))

	assert.Empty(t, feed(b, low, ms(100), ms(149)))
	assert.Empty(t, feed(b, high, ms(149), ms(400)))
	assert.Equal(t, StateStableHigh, b.State())
}

func TestHeldAtPowerUp(t *testing.T) {
	b := New(ms(50))

	assert.Empty(t, feed(b, low, 0, ms(500)))
	assert.Equal(t, StateStableLow, b.State())

	assert.Equal(t, []Edge{EdgeRelease}, feed(b, high, ms(500), ms(600)))
	assert.Equal(t, []Edge{EdgePress}, feed(b, low, ms(600), ms(700)))
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from  State
		level bool
		next  State
		edge  Edge
	}{
		{StateUnstable, high, StateStableHigh, EdgeNone},
		{StateUnstable, low, StateStableLow, EdgeNone},
		{StateStableHigh, high, StateStableHigh, EdgeNone},
		{StateStableHigh, low, StateStableLow, EdgePress},
		{StateStableLow, low, StateStableLow, EdgeNone},
		{StateStableLow, high, StateStableHigh, EdgeRelease},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.next.String(), func(t *testing.T) {
			tr := transitions[tt.from][levelIndex(tt.level)]
			assert.Equal(t, tt.next, tr.next)
			assert.Equal(t, tt.edge, tr.edge)
		})
	}
}

// TestRandomBounce compares presses against a reference that works on whole runs of equal
// readings: a run commits when it lasts past the delay, and a press is a committed Low run
// that follows a committed High run.
func TestRandomBounce(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		b := New(ms(50))

		var (
			now       time.Duration
			presses   int
			expected  int
			committed *bool
			level     = r.Intn(2) == 0
		)

		for run := 0; run < 40; run++ {
			length := ms(1 + r.Intn(120))
			for _, e := range feed(b, level, now, now+length) {
				if e == EdgePress {
					presses++
				}
			}

			// the run is sampled at now..now+length-1ms and commits if any sample is 50ms in
			if length-time.Millisecond >= ms(50) {
				if !level && committed != nil && *committed {
					expected++
				}
				l := level
				committed = &l
			}

			now += length
			level = !level
		}

		require.Equal(t, expected, presses, "iteration %d", i)
	}
}
