package entity

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// ErrUnknownAttack is returned when an attack id is not in the catalog.
// It means the UI and the catalog data disagree.
var ErrUnknownAttack = errors.New("unknown attack")

// Attack is an immutable move a combatant can use
type Attack struct {
	ID     string
	Name   string
	Damage int
	Type   string
	Color  color.Color

	// Audio clip ids; empty means silent
	InitClip string
	HitClip  string
}

// Label returns the hover caption, e.g. "Fireball - Fire"
func (a Attack) Label() string {
	return fmt.Sprintf("%s - %s", a.Name, a.Type)
}

// AttackCatalog maps attack ids to attacks
type AttackCatalog map[string]Attack

// Lookup returns the attack for id. Ids are matched case-insensitively,
// so "Tackle" and "tackle" resolve to the same entry.
func (c AttackCatalog) Lookup(id string) (Attack, error) {
	if a, ok := c[id]; ok {
		return a, nil
	}
	if a, ok := c[strings.ToLower(id)]; ok {
		return a, nil
	}
	return Attack{}, fmt.Errorf("%w: %q", ErrUnknownAttack, id)
}

// IDs returns the catalog ids in sorted order
func (c AttackCatalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultAttacks returns the built-in attack catalog
func DefaultAttacks() AttackCatalog {
	return AttackCatalog{
		"tackle": {
			ID:      "tackle",
			Name:    "Tackle",
			Damage:  10,
			Type:    "Normal",
			Color:   color.Black,
			HitClip: "tackleHit",
		},
		"fireball": {
			ID:       "fireball",
			Name:     "Fireball",
			Damage:   75,
			Type:     "Fire",
			Color:    color.RGBA{R: 255, A: 255},
			InitClip: "initFireball",
			HitClip:  "fireballHit",
		},
	}
}
