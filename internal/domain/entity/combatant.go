package entity

import (
	"fmt"
	"image/color"
)

// MonsterDef is a static combatant catalog entry
type MonsterDef struct {
	ID        string
	Name      string
	Health    int
	Width     float64
	Height    float64
	Position  Vec
	Frames    Frames
	Animate   bool
	IsEnemy   bool
	Color     color.Color
	AttackIDs []string
}

// Combatant is a sprite with battle extras
type Combatant struct {
	Sprite

	Name      string
	Health    int
	MaxHealth int
	IsEnemy   bool
	Attacks   []Attack
}

// NewCombatant resolves def's attacks against the catalog. Every attack id
// must exist; a missing one is a data error.
func NewCombatant(def MonsterDef, catalog AttackCatalog) (*Combatant, error) {
	attacks := make([]Attack, 0, len(def.AttackIDs))
	for _, id := range def.AttackIDs {
		a, err := catalog.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("monster %s: %w", def.ID, err)
		}
		attacks = append(attacks, a)
	}

	health := def.Health
	if health <= 0 {
		health = 100
	}

	sprite := NewSprite(def.Position, def.Width, def.Height, def.Frames)
	sprite.Animate = def.Animate
	sprite.Tint = def.Color

	return &Combatant{
		Sprite:    sprite,
		Name:      def.Name,
		Health:    health,
		MaxHealth: health,
		IsEnemy:   def.IsEnemy,
		Attacks:   attacks,
	}, nil
}

// TakeDamage subtracts damage from health. Health may go negative.
func (c *Combatant) TakeDamage(damage int) {
	c.Health -= damage
}

// Fainted returns true once health has reached zero or below
func (c *Combatant) Fainted() bool {
	return c.Health <= 0
}

// HealthPercent returns remaining health as 0..100
func (c *Combatant) HealthPercent() float64 {
	if c.MaxHealth <= 0 || c.Health <= 0 {
		return 0
	}
	pct := float64(c.Health) / float64(c.MaxHealth) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
