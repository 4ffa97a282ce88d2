package hostgpio

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinmclean/dondonpa/firmware/clock"
	"github.com/calvinmclean/dondonpa/firmware/controller"
	"github.com/calvinmclean/dondonpa/firmware/status"
)

func TestStreamSerialReadsEverything(t *testing.T) {
	s := NewStreamSerial(strings.NewReader("12x"), io.Discard, 16)

	var got []byte
	require.Eventually(t, func() bool {
		b, err := s.ReadByte()
		if err == io.EOF {
			return true
		}
		if err == nil {
			got = append(got, b)
		}
		return false
	}, time.Second, time.Millisecond)

	assert.Equal(t, []byte("12x"), got)
	assert.Equal(t, 0, s.Buffered())
	assert.NoError(t, s.Err())
}

func TestStreamSerialNoData(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	s := NewStreamSerial(r, io.Discard, 16)

	assert.Equal(t, 0, s.Buffered())
	_, err := s.ReadByte()
	assert.ErrorIs(t, err, ErrNoData)
}

func TestStreamSerialDropsWhenFull(t *testing.T) {
	s := NewStreamSerial(strings.NewReader("abcdef"), io.Discard, 4)

	require.Eventually(t, func() bool {
		return s.Buffered() == 4
	}, time.Second, time.Millisecond)

	var got []byte
	for {
		b, err := s.ReadByte()
		if err != nil {
			break
		}
		got = append(got, b)
	}
	assert.Equal(t, []byte("abcd"), got)
}

func TestStreamSerialReadError(t *testing.T) {
	r, w := io.Pipe()
	w.CloseWithError(assert.AnError)

	s := NewStreamSerial(r, io.Discard, 4)

	require.Eventually(t, func() bool {
		_, err := s.ReadByte()
		return err == io.EOF
	}, time.Second, time.Millisecond)
	assert.ErrorIs(t, s.Err(), assert.AnError)
}

func TestStreamSerialWrite(t *testing.T) {
	var out bytes.Buffer
	s := NewStreamSerial(strings.NewReader(""), &out, 4)

	n, err := s.Write([]byte("1\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "1\r\n", out.String())
}

func TestControlLoopOverStream(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	var out bytes.Buffer
	serial := NewStreamSerial(r, &out, 16)

	outA, outB, outC := &controller.FakePin{}, &controller.FakePin{}, &controller.FakePin{}
	clk := &clock.Fake{}
	c := controller.New(controller.Hardware{
		Button:  &controller.FakePin{Level: true},
		Sense:   &controller.FakePin{Level: true},
		Outputs: [3]controller.Output{outA, outB, outC},
		Strip:   NopStrip{},
		Serial:  serial,
		Painter: status.NewWriterPainter(io.Discard),
	}, controller.DefaultConfig(), clk)

	_, err := w.Write([]byte("1"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return serial.Buffered() == 1
	}, time.Second, time.Millisecond)

	c.Tick()
	assert.True(t, outA.Level)
	assert.False(t, outB.Level)

	clk.Advance(100 * time.Millisecond)
	c.Tick()
	assert.False(t, outA.Level)
	assert.Empty(t, out.String())
}
