package system

import (
	"fmt"

	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/config"
)

// LoadMap converts a MapConfig into the overworld.
// Both layers must fold into rows of the map width, and a battle zone
// layer, when present, must match the collision layer's size.
func LoadMap(cfg *config.MapConfig) (*entity.World, error) {
	origin := entity.Vec{X: cfg.Offset.X, Y: cfg.Offset.Y}
	collisions := cfg.Layers.Collisions
	zones := cfg.Layers.BattleZones

	boundaries, err := entity.BuildRects(collisions.Tiles, cfg.Width, sentinel(collisions), origin)
	if err != nil {
		return nil, fmt.Errorf("map %s collisions: %w", cfg.ID, err)
	}

	battleZones, err := entity.BuildRects(zones.Tiles, cfg.Width, sentinel(zones), origin)
	if err != nil {
		return nil, fmt.Errorf("map %s battle zones: %w", cfg.ID, err)
	}

	if len(zones.Tiles) > 0 && len(zones.Tiles) != len(collisions.Tiles) {
		return nil, fmt.Errorf("map %s: %w: layer sizes differ (%d vs %d)",
			cfg.ID, entity.ErrInvalidTileLayout, len(collisions.Tiles), len(zones.Tiles))
	}

	rows := len(collisions.Tiles) / cfg.Width
	return &entity.World{
		Origin:      origin,
		Size:        entity.Vec{X: float64(cfg.Width * entity.TileWidth), Y: float64(rows * entity.TileHeight)},
		Boundaries:  boundaries,
		BattleZones: battleZones,
	}, nil
}

func sentinel(layer config.LayerConfig) int {
	if layer.Sentinel == 0 {
		return entity.WallTileID
	}
	return layer.Sentinel
}
