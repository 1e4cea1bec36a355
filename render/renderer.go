// Package render turns a viewport into pixels.
package render

import (
	"errors"
	"fmt"
	"image"
	"time"

	mandel "github.com/marben/mandelzoom"
)

// MaxPixels bounds the frame buffer a Renderer agrees to allocate.
const MaxPixels = 1 << 26

// ErrInvalidMaxIter is returned for a non-positive iteration cap.
var ErrInvalidMaxIter = errors.New("invalid iteration cap")

// Renderer owns the frame buffer for one viewport and recomputes it only
// after Invalidate. It is not safe for concurrent use.
type Renderer struct {
	vp      *mandel.Viewport
	maxIter int
	palette Palette

	img   *image.RGBA
	iters []int
	tiles []image.Rectangle
	dirty bool

	// OnTileRender, if set, is called after each tile of a recompute.
	OnTileRender func(tile image.Rectangle)
}

var _ mandel.Invalidator = (*Renderer)(nil)

// New allocates the frame buffer for vp. A nil palette means Blue.
// The first call to Frame always computes.
func New(vp *mandel.Viewport, maxIter int, p Palette) (*Renderer, error) {
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxIter, maxIter)
	}
	w, h := vp.Size()
	if w*h > MaxPixels {
		return nil, fmt.Errorf("%w: frame %dx%d exceeds %d pixels", mandel.ErrInvalidSize, w, h, MaxPixels)
	}
	if p == nil {
		p = Blue
	}
	bounds := image.Rect(0, 0, w, h)
	return &Renderer{
		vp:      vp,
		maxIter: maxIter,
		palette: p,
		img:     image.NewRGBA(bounds),
		iters:   make([]int, w*h),
		tiles:   SplitRect(bounds, TileSize, TileSize),
		dirty:   true,
	}, nil
}

// Invalidate marks the frame stale.
func (r *Renderer) Invalidate() {
	r.dirty = true
}

// Dirty reports whether the next Frame call will recompute.
func (r *Renderer) Dirty() bool {
	return r.dirty
}

// MaxIter is the iteration cap.
func (r *Renderer) MaxIter() int {
	return r.maxIter
}

// Tiles returns the tiles a frame is computed in.
func (r *Renderer) Tiles() []image.Rectangle {
	return r.tiles
}

// Frame returns the current frame, recomputing it first if the view changed.
// fresh reports whether a recompute happened. The returned image is reused
// by later calls; presenters must not modify it.
func (r *Renderer) Frame() (img *image.RGBA, fresh bool) {
	if !r.dirty {
		return r.img, false
	}
	r.render()
	r.dirty = false
	return r.img, true
}

// Iteration returns the escape count computed for pixel (px, py) by the
// last recompute.
func (r *Renderer) Iteration(px, py int) int {
	w, _ := r.vp.Size()
	return r.iters[py*w+px]
}

func (r *Renderer) render() {
	start := time.Now()
	for _, tile := range r.tiles {
		r.renderTile(tile)
		if r.OnTileRender != nil {
			r.OnTileRender(tile)
		}
	}
	w, h := r.vp.Size()
	mandel.Logger().Debug("frame rendered",
		"size", fmt.Sprintf("%dx%d", w, h),
		"max_iter", r.maxIter,
		"region", r.vp.Region(),
		"elapsed", time.Since(start))
}

func (r *Renderer) renderTile(tile image.Rectangle) {
	w, _ := r.vp.Size()
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		ci := r.vp.PixelToPlaneY(py)
		row := py * w

		for px := tile.Min.X; px < tile.Max.X; px++ {
			cr := r.vp.PixelToPlaneX(px)

			iter := mandel.Evaluate(cr, ci, r.maxIter)
			r.iters[row+px] = iter
			r.img.SetRGBA(px, py, r.palette(iter, r.maxIter))
		}
	}
}
