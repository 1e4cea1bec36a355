package render

import "image"

// TileSize is the edge of the square tiles a frame is computed and shipped in.
const TileSize = 64

// SplitRect cuts r into a row-major grid of tileW x tileH cells anchored at
// r.Min. The last column and row are clipped to r.
func SplitRect(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("render: non-positive tile size")
	}
	cols := (r.Dx() + tileW - 1) / tileW
	rows := (r.Dy() + tileH - 1) / tileH
	if cols <= 0 || rows <= 0 {
		return nil
	}

	tiles := make([]image.Rectangle, 0, cols*rows)
	cell := image.Rect(0, 0, tileW, tileH).Add(r.Min)
	for j := range rows {
		for i := range cols {
			tiles = append(tiles, cell.Add(image.Pt(i*tileW, j*tileH)).Intersect(r))
		}
	}
	return tiles
}
