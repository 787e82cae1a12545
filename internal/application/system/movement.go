package system

import "github.com/natac13/top-down-cartoon-game/internal/domain/entity"

// MovementSystem moves the player by scrolling the world around it.
// The player stays fixed on screen.
type MovementSystem struct {
	step float64
}

// NewMovementSystem creates a movement system scrolling step pixels per tick
func NewMovementSystem(step float64) *MovementSystem {
	if step <= 0 {
		step = 3
	}
	return &MovementSystem{step: step}
}

// StepSize returns the pixels moved per tick
func (s *MovementSystem) StepSize() float64 {
	return s.step
}

// Delta returns the world scroll for moving the player in dir
func (s *MovementSystem) Delta(dir entity.Direction) (dx, dy float64) {
	x, y := dir.Delta()
	return -float64(x) * s.step, -float64(y) * s.step
}

// Blocked reports whether any boundary, shifted by the pending scroll,
// would overlap the player
func (s *MovementSystem) Blocked(world *entity.World, player entity.Rect, dir entity.Direction) bool {
	dx, dy := s.Delta(dir)
	for _, b := range world.Boundaries {
		if entity.Overlap(player, world.ScreenRect(b).Shifted(dx, dy)) {
			return true
		}
	}
	return false
}

// Step scrolls the world one step unless a boundary vetoes it.
// A veto cancels the whole step; there is no partial move.
func (s *MovementSystem) Step(world *entity.World, player entity.Rect, dir entity.Direction) bool {
	if dir == entity.DirNone {
		return false
	}
	if s.Blocked(world, player, dir) {
		return false
	}
	world.Translate(s.Delta(dir))
	return true
}
