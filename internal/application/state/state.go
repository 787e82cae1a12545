package state

// GameState represents the current state of the overworld
type GameState int

const (
	StateExploring GameState = iota
	StateEncounter
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateExploring:
		return "Exploring"
	case StateEncounter:
		return "Encounter"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// AcceptsMovement reports whether the player may move in this state
func (s GameState) AcceptsMovement() bool {
	return s == StateExploring
}
