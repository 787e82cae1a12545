package config

// MapConfig is the root config for maps/<id>.json.
// Layers are flat row-major tile arrays exported by the map editor.
type MapConfig struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Width      int            `json:"width"`  // In tiles
	Offset     PositionConfig `json:"offset"` // Map origin on screen at start
	Background string         `json:"background"`
	Layers     MapLayers      `json:"layers"`
}

type MapLayers struct {
	Collisions  LayerConfig `json:"collisions"`
	BattleZones LayerConfig `json:"battleZones"`
}

type LayerConfig struct {
	Sentinel int   `json:"sentinel"`
	Tiles    []int `json:"tiles"`
}

// Height returns the map height in tiles, taken from the collision layer
func (m *MapConfig) Height() int {
	if m.Width <= 0 {
		return 0
	}
	return len(m.Layers.Collisions.Tiles) / m.Width
}
