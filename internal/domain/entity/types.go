package entity

// Tile dimensions in world pixels
const (
	TileWidth  = 48
	TileHeight = 48
)

// WallTileID is the tile code the map editor exports for blocking cells
const WallTileID = 1025

// Vec is a 2D point or offset in pixels
type Vec struct {
	X, Y float64
}

// Add returns v translated by o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y float64
	W, H float64
}

// Shifted returns the rect translated by (dx, dy)
func (r Rect) Shifted(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Area returns the rect's area
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Direction is a movement direction on the overworld
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the unit step of the direction in screen space (y grows down)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ParseDirection parses the output of Direction.String
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return DirUp
	case "down":
		return DirDown
	case "left":
		return DirLeft
	case "right":
		return DirRight
	default:
		return DirNone
	}
}
