package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateExploring, "Exploring"},
		{StateEncounter, "Encounter"},
		{StatePaused, "Paused"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateExploring)
	assert.Equal(t, GameState(1), StateEncounter)
	assert.Equal(t, GameState(2), StatePaused)
}

func TestGameState_AcceptsMovement(t *testing.T) {
	assert.True(t, StateExploring.AcceptsMovement())
	assert.False(t, StateEncounter.AcceptsMovement())
	assert.False(t, StatePaused.AcceptsMovement())
}
