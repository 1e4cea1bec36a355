package mandel

import (
	"fmt"
	"math"
)

// DefaultPanFraction moves the view by one tenth of its span, so panning
// feels the same at every zoom level.
const DefaultPanFraction = 0.10

// Direction of a pan.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Viewport maps a fixed pixel grid onto a mutable rectangle of the complex
// plane. Pixel (0,0) is (Xmin, Ymin); y grows downward on screen.
//
// Bounds change only through Pan and ZoomTo.
type Viewport struct {
	region        Region
	width, height int
}

// NewViewport creates a width×height viewport showing r.
func NewViewport(width, height int, r Region) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &Viewport{region: r, width: width, height: height}, nil
}

// Region returns the visible bounds.
func (v *Viewport) Region() Region {
	return v.region
}

// Size returns the pixel grid dimensions.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// PixelToPlaneX maps a pixel column to a real coordinate. Columns outside
// [0, width) are extrapolated, not clamped.
func (v *Viewport) PixelToPlaneX(px int) float64 {
	span := math.Abs(v.region.Xmax - v.region.Xmin)
	return float64(px)/(float64(v.width)/span) + v.region.Xmin
}

// PixelToPlaneY maps a pixel row to an imaginary coordinate.
func (v *Viewport) PixelToPlaneY(py int) float64 {
	span := math.Abs(v.region.Ymax - v.region.Ymin)
	return float64(py)/(float64(v.height)/span) + v.region.Ymin
}

// PlaneToPixelX is the inverse of PixelToPlaneX. The result is fractional;
// callers round as they need.
func (v *Viewport) PlaneToPixelX(x float64) float64 {
	span := math.Abs(v.region.Xmax - v.region.Xmin)
	return (x - v.region.Xmin) * (float64(v.width) / span)
}

// PlaneToPixelY is the inverse of PixelToPlaneY.
func (v *Viewport) PlaneToPixelY(y float64) float64 {
	span := math.Abs(v.region.Ymax - v.region.Ymin)
	return (y - v.region.Ymin) * (float64(v.height) / span)
}

// Pan shifts both bounds of one axis by fraction of that axis' span.
// The span itself is unchanged.
func (v *Viewport) Pan(d Direction, fraction float64) {
	r := &v.region
	switch d {
	case Left, Right:
		delta := math.Abs(r.Xmax-r.Xmin) * fraction
		if d == Left {
			delta = -delta
		}
		r.Xmin += delta
		r.Xmax += delta
	case Up, Down:
		delta := math.Abs(r.Ymax-r.Ymin) * fraction
		if d == Up {
			delta = -delta
		}
		r.Ymin += delta
		r.Ymax += delta
	default:
		invariant(false, "pan: unknown direction %d", int(d))
		return
	}
	Logger().Debug("pan", "direction", d, "fraction", fraction, "region", v.region)
}

// ZoomTo replaces the bounds with r as given. An inverted or empty r is a
// caller bug; it is only checked in mandeldebug builds.
func (v *Viewport) ZoomTo(r Region) {
	invariant(r.Validate() == nil, "zoom: invalid region %s", r)
	v.region = r
	Logger().Debug("zoom", "region", r)
}
