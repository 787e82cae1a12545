package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
)

// InputState holds the input of one tick
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	// Pressed is the direction whose key went down this tick
	Pressed entity.Direction

	// Battle keys
	Attack  int // 1-based attack slot pressed this tick, 0 for none
	Confirm bool

	ToggleDebug bool
	Pause       bool
}

// Moving reports whether any direction key is down
func (s InputState) Moving() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// Held reports whether the key for dir is down
func (s InputState) Held(dir entity.Direction) bool {
	switch dir {
	case entity.DirUp:
		return s.Up
	case entity.DirDown:
		return s.Down
	case entity.DirLeft:
		return s.Left
	case entity.DirRight:
		return s.Right
	default:
		return false
	}
}

// InputSource supplies one InputState per tick
type InputSource interface {
	GetInput() InputState
}

// InputSystem reads the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

var directionKeys = []struct {
	dir  entity.Direction
	keys []ebiten.Key
}{
	{entity.DirUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{entity.DirLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{entity.DirDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{entity.DirRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
}

var attackKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	var in InputState
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if ebiten.IsKeyPressed(k) {
				in.setHeld(dk.dir)
			}
			if inpututil.IsKeyJustPressed(k) {
				in.Pressed = dk.dir
			}
		}
	}

	for i, k := range attackKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Attack = i + 1
		}
	}
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.ToggleDebug = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}

func (s *InputState) setHeld(dir entity.Direction) {
	switch dir {
	case entity.DirUp:
		s.Up = true
	case entity.DirDown:
		s.Down = true
	case entity.DirLeft:
		s.Left = true
	case entity.DirRight:
		s.Right = true
	}
}

// DirectionTracker resolves held keys to a single movement direction.
// Only the most recently pressed direction moves, and only while its key
// is still held.
type DirectionTracker struct {
	last entity.Direction
}

// Update folds in this tick's input and returns the direction to move
func (t *DirectionTracker) Update(in InputState) entity.Direction {
	if in.Pressed != entity.DirNone {
		t.last = in.Pressed
	}
	if in.Held(t.last) {
		return t.last
	}
	return entity.DirNone
}

// Last returns the most recently pressed direction
func (t *DirectionTracker) Last() entity.Direction {
	return t.last
}

// Reset forgets the last pressed direction
func (t *DirectionTracker) Reset() {
	t.last = entity.DirNone
}
