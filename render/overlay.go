package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	mandel "github.com/marben/mandelzoom"
)

// SelectionColor is the outline colour used by every frontend.
var SelectionColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// DrawSelection returns a copy of frame with sel outlined. frame itself is
// left untouched so the renderer can keep reusing it.
func DrawSelection(frame *image.RGBA, sel image.Rectangle, c color.Color) (*image.RGBA, error) {
	dc := gg.NewContextForImage(frame)
	defer func() {
		_ = dc.Close()
	}()

	dc.SetColor(c)
	dc.SetLineWidth(1)
	// Half-pixel offsets keep a 1px line on exactly one pixel column/row.
	dc.DrawRectangle(
		float64(sel.Min.X)+0.5,
		float64(sel.Min.Y)+0.5,
		float64(sel.Dx()-1),
		float64(sel.Dy()-1),
	)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("stroke selection: %w", err)
	}

	img := dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}

// Caption describes the view shown in f.
func Caption(f mandel.Frame) string {
	return fmt.Sprintf("%s  iter %d", f.Region, f.MaxIter)
}

// Annotate writes text in the top-left corner of img over a translucent band.
func Annotate(img draw.Image, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	w := d.MeasureString(text).Ceil()
	band := image.Rect(0, 0, w+8, face.Height+6).Intersect(img.Bounds())
	draw.Draw(img, band, image.NewUniform(color.RGBA{A: 160}), image.Point{}, draw.Over)

	d.Dot = fixed.P(4, face.Ascent+3)
	d.DrawString(text)
}
