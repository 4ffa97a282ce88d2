package hostgpio

import (
	"errors"
	"image/color"
	"io"
	"sync"
)

// ErrNoData is returned by ReadByte when nothing is buffered
var ErrNoData = errors.New("no data")

// StreamSerial turns a blocking byte stream into the non-blocking serial link the control loop
// polls. A goroutine reads the stream into a buffered channel.
type StreamSerial struct {
	in  chan byte
	out io.Writer

	mtx sync.Mutex
	err error
}

// NewStreamSerial starts reading r. Bytes are dropped while size bytes are already waiting.
func NewStreamSerial(r io.Reader, w io.Writer, size int) *StreamSerial {
	s := &StreamSerial{
		in:  make(chan byte, size),
		out: w,
	}
	go s.read(r)
	return s
}

func (s *StreamSerial) read(r io.Reader) {
	defer close(s.in)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case s.in <- b:
			default:
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.mtx.Lock()
				s.err = err
				s.mtx.Unlock()
			}
			return
		}
	}
}

func (s *StreamSerial) Buffered() int {
	return len(s.in)
}

func (s *StreamSerial) ReadByte() (byte, error) {
	select {
	case b, ok := <-s.in:
		if !ok {
			return 0, io.EOF
		}
		return b, nil
	default:
		return 0, ErrNoData
	}
}

func (s *StreamSerial) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// Err returns the error that stopped reading, if any. io.EOF is not an error.
func (s *StreamSerial) Err() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.err
}

// NopStrip stands in for the LED strip on boards without one
type NopStrip struct{}

func (NopStrip) WriteColors([]color.RGBA) error {
	return nil
}
