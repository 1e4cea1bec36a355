package mandel

import "image"

// Selection is the square, pointer-tracking rectangle that picks the next
// zoom target. Coordinates are in pixels and may lie outside the grid.
type Selection struct {
	x, y int
	size int
}

// NewSelection returns a size×size selection centred on (cx, cy).
func NewSelection(size, cx, cy int) *Selection {
	s := &Selection{size: size}
	s.MoveTo(cx, cy)
	return s
}

// DefaultSelectionSize is a fifth of the grid width, never less than one pixel.
func DefaultSelectionSize(width int) int {
	return max(width/5, 1)
}

// MoveTo centres the selection on (px, py).
func (s *Selection) MoveTo(px, py int) {
	s.x = px - s.size/2
	s.y = py - s.size/2
}

// Size is the side length in pixels.
func (s *Selection) Size() int {
	return s.size
}

// Rect returns the selection in pixel coordinates.
func (s *Selection) Rect() image.Rectangle {
	return image.Rect(s.x, s.y, s.x+s.size, s.y+s.size)
}

// Region translates the selection through vp into plane coordinates.
func (s *Selection) Region(vp *Viewport) Region {
	r := s.Rect()
	return Region{
		Xmin: vp.PixelToPlaneX(r.Min.X),
		Xmax: vp.PixelToPlaneX(r.Max.X),
		Ymin: vp.PixelToPlaneY(r.Min.Y),
		Ymax: vp.PixelToPlaneY(r.Max.Y),
	}
}
