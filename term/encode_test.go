package term

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mandel "github.com/marben/mandelzoom"
)

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, red)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 1, blue)

	var buf bytes.Buffer
	Encode(&buf, img)

	cell := "\x1b[38;2;255;0;0;48;2;0;0;255m▀"
	assert.Equal(t, cell+cell+"\x1b[m\r\n", buf.String())
}

func TestEncode_OddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.SetRGBA(0, 2, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	var buf bytes.Buffer
	Encode(&buf, img)

	rows := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	require.Len(t, rows, 2)
	assert.Equal(t, "\x1b[38;2;1;2;3;48;2;0;0;0m▀\x1b[m", rows[1])
}

func TestTerminalModes(t *testing.T) {
	assert.Equal(t, "\x1b[?1049h\x1b[?25l\x1b[?7l\x1b[2J\x1b[H\x1b[?1003h\x1b[?1006h", enterSeq)
	assert.True(t, strings.HasSuffix(exitSeq, "\x1b[?25h\x1b[?1049l"), "cursor back before leaving the alternate screen")
	assert.Contains(t, exitSeq, "\x1b[?1003l")
}

func TestGridSize(t *testing.T) {
	w, h := GridSize(80, 24)
	assert.Equal(t, 80, w)
	assert.Equal(t, 46, h)

	_, h = GridSize(10, 1)
	assert.Equal(t, 2, h)
}

func TestCellToPixel(t *testing.T) {
	x, y := CellToPixel(0, 0)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = CellToPixel(4, 2)
	assert.Equal(t, 4, x)
	assert.Equal(t, 4, y)
}

func TestPresenter_SkipsUnchangedFrames(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, 8)
	f := mandel.Frame{
		Image:     image.NewRGBA(image.Rect(0, 0, 8, 4)),
		Fresh:     true,
		Selection: image.Rect(2, 0, 4, 2),
		Region:    mandel.DefaultRegion,
		MaxIter:   10,
	}

	require.NoError(t, p.Present(f))
	first := out.Len()
	assert.Positive(t, first)
	assert.True(t, strings.HasPrefix(out.String(), syncBegin))
	assert.True(t, strings.HasSuffix(out.String(), syncEnd))

	f.Fresh = false
	require.NoError(t, p.Present(f))
	assert.Equal(t, first, out.Len(), "nothing changed, nothing written")

	f.Selection = f.Selection.Add(image.Pt(1, 1))
	require.NoError(t, p.Present(f))
	assert.Greater(t, out.Len(), first, "selection moved")
}
