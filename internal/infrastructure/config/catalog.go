package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
)

// AttackFile is the root of catalog/attacks.yaml
type AttackFile struct {
	Attacks []AttackSpec `yaml:"attacks"`
}

type AttackSpec struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Damage   int       `yaml:"damage"`
	Type     string    `yaml:"type"`
	Color    YAMLColor `yaml:"color"`
	InitClip string    `yaml:"init_clip"`
	HitClip  string    `yaml:"hit_clip"`
}

// MonsterFile is the root of catalog/monsters.yaml
type MonsterFile struct {
	Monsters []MonsterSpec `yaml:"monsters"`
}

type MonsterSpec struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Health   int          `yaml:"health"`
	Width    float64      `yaml:"width"`
	Height   float64      `yaml:"height"`
	Position PositionSpec `yaml:"position"`
	Frames   FramesSpec   `yaml:"frames"`
	Animate  bool         `yaml:"animate"`
	Enemy    bool         `yaml:"enemy"`
	Color    YAMLColor    `yaml:"color"`
	Attacks  []string     `yaml:"attacks"`
}

type PositionSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type FramesSpec struct {
	Max  int `yaml:"max"`
	Hold int `yaml:"hold"`
}

// AudioFile is the root of catalog/audio.yaml
type AudioFile struct {
	Clips []AudioSpec `yaml:"clips"`
}

type AudioSpec struct {
	ID     string  `yaml:"id"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

// Catalog is the static game data: attacks, monsters and audio clips
type Catalog struct {
	Attacks  entity.AttackCatalog
	Monsters map[string]entity.MonsterDef
	Audio    []AudioSpec
}

// Monster returns the monster definition for id
func (c *Catalog) Monster(id string) (entity.MonsterDef, error) {
	def, ok := c.Monsters[id]
	if !ok {
		return entity.MonsterDef{}, fmt.Errorf("unknown monster %q", id)
	}
	return def, nil
}

// NewCatalog converts the YAML specs and checks cross references.
// Every attack a monster lists must exist in the attack catalog.
func NewCatalog(attacks AttackFile, monsters MonsterFile, audio AudioFile) (*Catalog, error) {
	c := &Catalog{
		Attacks:  make(entity.AttackCatalog, len(attacks.Attacks)),
		Monsters: make(map[string]entity.MonsterDef, len(monsters.Monsters)),
		Audio:    audio.Clips,
	}

	for _, spec := range attacks.Attacks {
		if spec.ID == "" {
			return nil, fmt.Errorf("attack %q has no id", spec.Name)
		}
		if _, dup := c.Attacks[spec.ID]; dup {
			return nil, fmt.Errorf("duplicate attack %q", spec.ID)
		}
		c.Attacks[spec.ID] = spec.Attack()
	}

	for _, spec := range monsters.Monsters {
		if spec.ID == "" {
			return nil, fmt.Errorf("monster %q has no id", spec.Name)
		}
		if _, dup := c.Monsters[spec.ID]; dup {
			return nil, fmt.Errorf("duplicate monster %q", spec.ID)
		}
		for _, id := range spec.Attacks {
			if _, err := c.Attacks.Lookup(id); err != nil {
				return nil, fmt.Errorf("monster %s: %w", spec.ID, err)
			}
		}
		c.Monsters[spec.ID] = spec.Def()
	}

	return c, nil
}

// Attack converts the spec to a domain attack
func (s AttackSpec) Attack() entity.Attack {
	var col color.Color = color.Black
	if s.Color.Color != nil {
		col = s.Color.Color
	}
	return entity.Attack{
		ID:       s.ID,
		Name:     s.Name,
		Damage:   s.Damage,
		Type:     s.Type,
		Color:    col,
		InitClip: s.InitClip,
		HitClip:  s.HitClip,
	}
}

// Def converts the spec to a monster definition
func (s MonsterSpec) Def() entity.MonsterDef {
	return entity.MonsterDef{
		ID:        s.ID,
		Name:      s.Name,
		Health:    s.Health,
		Width:     s.Width,
		Height:    s.Height,
		Position:  entity.Vec{X: s.Position.X, Y: s.Position.Y},
		Frames:    entity.Frames{Max: s.Frames.Max, Hold: s.Frames.Hold},
		Animate:   s.Animate,
		IsEnemy:   s.Enemy,
		Color:     s.Color.Color,
		AttackIDs: s.Attacks,
	}
}

// YAMLColor decodes "#RRGGBB" or "#RRGGBBAA"
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	col, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = col
	return nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA"
func ParseHexColor(v string) (color.RGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var out color.RGBA
	var err error
	if out.R, err = parse(0); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
	}
	if out.G, err = parse(2); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
	}
	if out.B, err = parse(4); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
	}
	out.A = 255
	if len(s) == 8 {
		if out.A, err = parse(6); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
		}
	}
	return out, nil
}
