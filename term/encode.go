package term

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/render"
)

const (
	upperHalf = "▀"
	help      = "arrows pan · space zoom · 1-6 landmarks · r reset · q quit"
)

// Encode writes img as rows of upper half blocks: the foreground of each cell
// is its upper pixel and the background its lower one.
func Encode(buf *bytes.Buffer, img image.Image) {
	b := img.Bounds()
	var style ansi.Style
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			bottom := color.RGBA{A: 255}
			if y+1 < b.Max.Y {
				bottom = opaque(img.At(x, y+1))
			}
			style = style[:0].ForegroundColor(opaque(img.At(x, y))).BackgroundColor(bottom)
			buf.WriteString(style.String())
			buf.WriteString(upperHalf)
		}
		buf.WriteString(ansi.ResetStyle + "\r\n")
	}
}

func opaque(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}

// Presenter draws frames with a one-line status bar underneath.
type Presenter struct {
	out    io.Writer
	cols   int
	status lipgloss.Style

	drawn bool
	last  image.Rectangle
	buf   bytes.Buffer
}

var _ mandel.Presenter = (*Presenter)(nil)

// NewPresenter writes to out, which is cols cells wide.
func NewPresenter(out io.Writer, cols int) *Presenter {
	return &Presenter{
		out:    out,
		cols:   cols,
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")),
	}
}

// Present redraws the screen unless neither the pixels nor the selection
// changed since the last call.
func (p *Presenter) Present(f mandel.Frame) error {
	if p.drawn && !f.Fresh && f.Selection == p.last {
		return nil
	}
	img, err := render.DrawSelection(f.Image, f.Selection, render.SelectionColor)
	if err != nil {
		return err
	}

	p.buf.Reset()
	p.buf.WriteString(syncBegin + ansi.CursorHomePosition)
	Encode(&p.buf, img)
	line := p.status.Width(p.cols).MaxWidth(p.cols).Render(render.Caption(f) + "  " + help)
	p.buf.WriteString(line)
	p.buf.WriteString(ansi.ResetStyle + syncEnd)

	if _, err := p.out.Write(p.buf.Bytes()); err != nil {
		return err
	}
	p.drawn = true
	p.last = f.Selection
	return nil
}
