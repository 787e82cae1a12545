package entity

// World is the overworld map state.
//
// Boundaries and BattleZones are fixed map coordinates, already placed at
// Origin. Scrolling moves the whole scene through a single Offset so that the
// background, foreground, every boundary and every battle zone always move
// together.
type World struct {
	Origin      Vec
	Offset      Vec
	Size        Vec
	Boundaries  []Rect
	BattleZones []Rect
}

// Translate scrolls every scene-movable entity by (dx, dy)
func (w *World) Translate(dx, dy float64) {
	w.Offset.X += dx
	w.Offset.Y += dy
}

// ScreenRect returns r positioned by the current scroll offset
func (w *World) ScreenRect(r Rect) Rect {
	return r.Shifted(w.Offset.X, w.Offset.Y)
}

// Background returns the map image rect on screen
func (w *World) Background() Rect {
	return Rect{X: w.Origin.X + w.Offset.X, Y: w.Origin.Y + w.Offset.Y, W: w.Size.X, H: w.Size.Y}
}
