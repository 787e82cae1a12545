package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingMap is returned when a map id has no file
var ErrMissingMap = errors.New("missing map")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Catalog  *Catalog
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// FS returns the loader's filesystem
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadSettings loads game.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// LoadMap loads a map JSON file
func (l *Loader) LoadMap(id string) (*MapConfig, error) {
	path := "maps/" + id + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingMap, id)
		}
		return nil, fmt.Errorf("failed to read map %s: %w", id, err)
	}

	var cfg MapConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", id, err)
	}
	if cfg.ID == "" {
		cfg.ID = id
	}

	return &cfg, nil
}

// LoadCatalog loads the attack, monster and audio catalogs
func (l *Loader) LoadCatalog() (*Catalog, error) {
	attacks, err := loadYAML[AttackFile](l.fsys, "catalog/attacks.yaml")
	if err != nil {
		return nil, err
	}
	monsters, err := loadYAML[MonsterFile](l.fsys, "catalog/monsters.yaml")
	if err != nil {
		return nil, err
	}
	audio, err := loadYAML[AudioFile](l.fsys, "catalog/audio.yaml")
	if err != nil {
		return nil, err
	}

	catalog, err := NewCatalog(attacks, monsters, audio)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}

// LoadAll loads all base configurations (settings, catalog)
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	catalog, err := l.LoadCatalog()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Catalog:  catalog,
	}, nil
}

func loadYAML[T any](fsys fs.FS, path string) (T, error) {
	var zero T
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var out T
	if err := yaml.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return out, nil
}
