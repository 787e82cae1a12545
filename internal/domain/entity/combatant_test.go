package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMonsterDef() MonsterDef {
	return MonsterDef{
		ID:        "emby",
		Name:      "Emby",
		Health:    100,
		Width:     64,
		Height:    64,
		Position:  Vec{X: 280, Y: 325},
		Frames:    Frames{Max: 4, Hold: 15},
		Animate:   true,
		AttackIDs: []string{"tackle", "fireball"},
	}
}

func TestNewCombatant(t *testing.T) {
	c, err := NewCombatant(createTestMonsterDef(), DefaultAttacks())
	require.NoError(t, err)

	assert.Equal(t, "Emby", c.Name)
	assert.Equal(t, 100, c.Health)
	assert.Equal(t, 100, c.MaxHealth)
	assert.False(t, c.IsEnemy)
	assert.True(t, c.Animate)
	assert.Equal(t, 1.0, c.Opacity)
	assert.Equal(t, Vec{X: 280, Y: 325}, c.Position)
	require.Len(t, c.Attacks, 2)
	assert.Equal(t, "Tackle", c.Attacks[0].Name)
	assert.Equal(t, 75, c.Attacks[1].Damage)
	assert.Equal(t, "fireball", c.Attacks[1].ID)
}

func TestNewCombatant_UnknownAttack(t *testing.T) {
	def := createTestMonsterDef()
	def.AttackIDs = []string{"tackle", "hyperbeam"}

	c, err := NewCombatant(def, DefaultAttacks())
	assert.ErrorIs(t, err, ErrUnknownAttack)
	assert.Nil(t, c)
}

func TestNewCombatant_DefaultHealth(t *testing.T) {
	def := createTestMonsterDef()
	def.Health = 0

	c, err := NewCombatant(def, DefaultAttacks())
	require.NoError(t, err)
	assert.Equal(t, 100, c.Health)
}

func TestCombatant_TakeDamage(t *testing.T) {
	c, err := NewCombatant(createTestMonsterDef(), DefaultAttacks())
	require.NoError(t, err)

	c.TakeDamage(75)
	assert.Equal(t, 25, c.Health)
	assert.False(t, c.Fainted())
	assert.InDelta(t, 25.0, c.HealthPercent(), 1e-9)

	c.TakeDamage(30)
	assert.Equal(t, -5, c.Health)
	assert.True(t, c.Fainted())
	assert.Equal(t, 0.0, c.HealthPercent())
}

func TestCombatant_FaintsAtExactlyZero(t *testing.T) {
	c := &Combatant{Health: 10, MaxHealth: 100}
	c.TakeDamage(10)
	assert.True(t, c.Fainted())
}

func TestAttackCatalog_Lookup(t *testing.T) {
	catalog := DefaultAttacks()

	tests := []struct {
		id       string
		wantName string
		wantErr  bool
	}{
		{"tackle", "Tackle", false},
		{"fireball", "Fireball", false},
		{"Fireball", "Fireball", false},
		{"surf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			a, err := catalog.Lookup(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAttack)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, a.Name)
		})
	}
}

func TestAttack_Label(t *testing.T) {
	a, err := DefaultAttacks().Lookup("fireball")
	require.NoError(t, err)
	assert.Equal(t, "Fireball - Fire", a.Label())
	assert.Equal(t, []string{"fireball", "tackle"}, DefaultAttacks().IDs())
}

func TestSprite_Advance(t *testing.T) {
	s := NewSprite(Vec{}, 48, 68, Frames{Max: 4, Hold: 10})
	s.Animate = true

	// Frame changes every Hold ticks and wraps after Max frames
	for i := 1; i <= 9; i++ {
		s.Advance()
	}
	assert.Equal(t, 0, s.Frames.Current)

	s.Advance()
	assert.Equal(t, 1, s.Frames.Current)

	for i := 0; i < 30; i++ {
		s.Advance()
	}
	assert.Equal(t, 0, s.Frames.Current, "wraps back to the first frame")
}

func TestSprite_Advance_NotAnimated(t *testing.T) {
	s := NewSprite(Vec{}, 48, 68, Frames{Max: 4, Hold: 1})

	for i := 0; i < 5; i++ {
		s.Advance()
	}
	assert.Equal(t, 0, s.Frames.Current)
	assert.Equal(t, 0, s.Frames.Elapsed)
}

func TestSprite_Defaults(t *testing.T) {
	s := NewSprite(Vec{X: 1, Y: 2}, 10, 20, Frames{})

	assert.Equal(t, 1, s.Frames.Max)
	assert.Equal(t, 10, s.Frames.Hold)
	assert.Equal(t, Rect{X: 1, Y: 2, W: 10, H: 20}, s.Bounds())

	s.Animate = true
	s.Frames.Current = 3
	s.Frames.Elapsed = 7
	s.ResetFrames()
	assert.Equal(t, 0, s.Frames.Current)
	assert.Equal(t, 0, s.Frames.Elapsed)
}
