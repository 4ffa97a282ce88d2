package controller

import (
	"bytes"
	"errors"
	"image/color"
)

var errNoData = errors.New("no data")

// FakePin is an Input and Output that holds a level in memory
type FakePin struct {
	Level bool
	// Sets counts calls to Set
	Sets int
}

func (p *FakePin) Get() bool {
	return p.Level
}

func (p *FakePin) Set(level bool) {
	p.Level = level
	p.Sets++
}

// FakeStrip records every write made to it
type FakeStrip struct {
	Writes [][]color.RGBA
	Err    error
}

func (s *FakeStrip) WriteColors(buf []color.RGBA) error {
	s.Writes = append(s.Writes, append([]color.RGBA(nil), buf...))
	return s.Err
}

// Last returns the most recent write, or nil
func (s *FakeStrip) Last() []color.RGBA {
	if len(s.Writes) == 0 {
		return nil
	}
	return s.Writes[len(s.Writes)-1]
}

// FakeSerial serves In to the reader and collects everything written in Out
type FakeSerial struct {
	In  []byte
	Out bytes.Buffer
}

func (s *FakeSerial) Buffered() int {
	return len(s.In)
}

func (s *FakeSerial) ReadByte() (byte, error) {
	if len(s.In) == 0 {
		return 0, errNoData
	}
	b := s.In[0]
	s.In = s.In[1:]
	return b, nil
}

func (s *FakeSerial) Write(p []byte) (int, error) {
	return s.Out.Write(p)
}
