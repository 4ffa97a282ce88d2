package status

import (
	"errors"
	"image/color"
	"io"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// filler is implemented by displays that can clear an area without a frame buffer
type filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// TextPainter draws frames on a pixel display, white on black
type TextPainter struct {
	display  drivers.Displayer
	font     *tinyfont.Font
	fg, bg   color.RGBA
	baseline int16
}

func NewTextPainter(display drivers.Displayer) *TextPainter {
	return &TextPainter{
		display:  display,
		font:     &proggy.TinySZ8pt7b,
		fg:       white,
		bg:       black,
		baseline: 8,
	}
}

func (p *TextPainter) Paint(f Frame) error {
	width, _ := p.display.Size()

	fill, canFill := p.display.(filler)
	for _, l := range f.Lines {
		if canFill {
			err := fill.FillRectangle(0, l.Y, width, LineHeight, p.bg)
			if err != nil {
				return errors.New("error clearing line: " + err.Error())
			}
		}
		tinyfont.WriteLine(p.display, p.font, l.X, l.Y+p.baseline, l.Text, p.fg)
	}

	tinydraw.Line(p.display, Margin, f.RuleY, width-Margin, f.RuleY, p.fg)

	err := p.display.Display()
	if err != nil {
		return errors.New("error updating display: " + err.Error())
	}
	return nil
}

// WriterPainter writes frames as plain text, one frame per block
type WriterPainter struct {
	w io.Writer
}

func NewWriterPainter(w io.Writer) *WriterPainter {
	return &WriterPainter{w: w}
}

func (p *WriterPainter) Paint(f Frame) error {
	var sb strings.Builder
	for i, l := range f.Lines {
		sb.WriteString(l.Text)
		sb.WriteByte('\n')
		if i == 0 {
			sb.WriteString(strings.Repeat("-", len(l.Text)))
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(p.w, sb.String())
	return err
}
