package entity

import "image/color"

// Frames tracks sprite sheet animation state.
// Max is the number of frames in the sheet row, Hold is how many
// elapsed ticks each frame stays on screen.
type Frames struct {
	Max     int
	Current int
	Elapsed int
	Hold    int
}

// Sprite is the drawable state shared by every on-screen entity.
// Position is owned by whichever loop is live; renderers only read it.
type Sprite struct {
	Position Vec
	Width    float64
	Height   float64
	Opacity  float64
	Frames   Frames
	Animate  bool
	Facing   Direction
	// Tint is the fill colour used when no image is attached
	Tint color.Color
}

// NewSprite creates a fully opaque sprite. Zero frame values default to a
// single-frame sheet held for 10 ticks.
func NewSprite(pos Vec, width, height float64, frames Frames) Sprite {
	if frames.Max <= 0 {
		frames.Max = 1
	}
	if frames.Hold <= 0 {
		frames.Hold = 10
	}
	return Sprite{
		Position: pos,
		Width:    width,
		Height:   height,
		Opacity:  1,
		Frames:   frames,
		Facing:   DirDown,
	}
}

// Bounds returns the sprite's rect at its current position
func (s *Sprite) Bounds() Rect {
	return Rect{X: s.Position.X, Y: s.Position.Y, W: s.Width, H: s.Height}
}

// Advance steps the frame animation by one drawn tick.
// Nothing happens unless Animate is set.
func (s *Sprite) Advance() {
	if !s.Animate {
		return
	}
	if s.Frames.Max > 1 {
		s.Frames.Elapsed++
	}
	if s.Frames.Hold <= 0 || s.Frames.Elapsed%s.Frames.Hold != 0 {
		return
	}
	if s.Frames.Current < s.Frames.Max-1 {
		s.Frames.Current++
	} else {
		s.Frames.Current = 0
	}
}

// ResetFrames rewinds the animation to the first frame
func (s *Sprite) ResetFrames() {
	s.Frames.Current = 0
	s.Frames.Elapsed = 0
}
