package system

import (
	"math/rand"

	"github.com/natac13/top-down-cartoon-game/internal/application/battle"
	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
)

// EncounterSystem decides when standing in a battle zone starts a fight
type EncounterSystem struct {
	rate  float64
	ratio float64
	draw  func() float64
}

// NewEncounterSystem creates an encounter check. draw returns a uniform
// value in [0,1); a nil draw uses rng.
func NewEncounterSystem(rate, ratio float64, draw func() float64) *EncounterSystem {
	if draw == nil {
		draw = rand.Float64
	}
	return &EncounterSystem{rate: rate, ratio: ratio, draw: draw}
}

// RandDraw adapts a seeded source to a draw function
func RandDraw(rng *rand.Rand) func() float64 {
	return rng.Float64
}

// Qualifies reports whether the player overlaps zone by more than the
// configured share of the player's area
func (s *EncounterSystem) Qualifies(player, zone entity.Rect) bool {
	if !entity.Overlap(player, zone) {
		return false
	}
	return entity.OverlapArea(player, zone) > player.Area()*s.ratio
}

// Evaluate checks the battle zones for this tick. Nothing is drawn unless
// the player is moving and no battle is under way. Only the first
// qualifying zone gets a draw; the scan stops there whether or not it fires.
func (s *EncounterSystem) Evaluate(player entity.Rect, world *entity.World, moving bool, session *battle.Session) (zone int, fired bool) {
	if !moving || (session != nil && session.Initiated) {
		return -1, false
	}
	for i, z := range world.BattleZones {
		if !s.Qualifies(player, world.ScreenRect(z)) {
			continue
		}
		return i, s.draw() < s.rate
	}
	return -1, false
}
