package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidTileLayout is returned when a flat tile array cannot be folded
// into rows of the declared width. It means the map data is corrupt.
var ErrInvalidTileLayout = errors.New("invalid tile layout")

// TileGrid is a row-major array of tile codes
type TileGrid struct {
	Tiles []int
	Width int
}

// Validate checks that the tiles fold into complete rows
func (g TileGrid) Validate() error {
	if g.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidTileLayout, g.Width)
	}
	if len(g.Tiles)%g.Width != 0 {
		return fmt.Errorf("%w: %d tiles is not a multiple of width %d", ErrInvalidTileLayout, len(g.Tiles), g.Width)
	}
	return nil
}

// Height returns the number of rows (0 for an invalid grid)
func (g TileGrid) Height() int {
	if g.Width <= 0 {
		return 0
	}
	return len(g.Tiles) / g.Width
}

// Rows returns the 2D view of the grid. Rows share storage with Tiles.
func (g TileGrid) Rows() ([][]int, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	rows := make([][]int, 0, g.Height())
	for i := 0; i < len(g.Tiles); i += g.Width {
		rows = append(rows, g.Tiles[i:i+g.Width:i+g.Width])
	}
	return rows, nil
}

// BuildRects emits one tile-sized rect for every cell equal to sentinel,
// placed at (col*TileWidth + offset.X, row*TileHeight + offset.Y).
// Rects are returned in row-major scan order.
func BuildRects(tiles []int, width, sentinel int, offset Vec) ([]Rect, error) {
	grid := TileGrid{Tiles: tiles, Width: width}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	rects := make([]Rect, 0)
	for i, code := range tiles {
		if code != sentinel {
			continue
		}
		row := i / width
		col := i % width
		rects = append(rects, Rect{
			X: float64(col*TileWidth) + offset.X,
			Y: float64(row*TileHeight) + offset.Y,
			W: TileWidth,
			H: TileHeight,
		})
	}
	return rects, nil
}
