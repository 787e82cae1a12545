package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/natac13/top-down-cartoon-game/internal/application/battle"
	"github.com/natac13/top-down-cartoon-game/internal/application/game"
	"github.com/natac13/top-down-cartoon-game/internal/application/scene"
	"github.com/natac13/top-down-cartoon-game/internal/application/scene/arena"
	"github.com/natac13/top-down-cartoon-game/internal/application/scene/overworld"
	"github.com/natac13/top-down-cartoon-game/internal/application/system"
	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/config"
)

// options wires the game together; everything but Loader is optional
type options struct {
	Loader *config.Loader
	MapID  string
	Seed   int64
	Input  system.InputSource
	Record string
	Debug  bool
	Logger *slog.Logger

	// BattleInput and View replace the live keyboard and ebitenui screen
	// of every battle
	BattleInput system.InputSource
	View        func() arena.View

	// Audio builds the clip player once the catalog is known
	Audio func(settings *config.SettingsConfig, catalog *config.Catalog) battle.AudioPlayer

	// Settings adjusts the loaded settings before anything is built
	Settings func(*config.SettingsConfig)
}

// app owns the loaded data and the scenes built from it
type app struct {
	game      *game.Game
	ctx       *scene.Context
	loader    *config.Loader
	settings  *config.SettingsConfig
	catalog   *config.Catalog
	overworld *overworld.Overworld

	battleInput system.InputSource
	view        func() arena.View

	// reloadPending is set when a catalog changed during a battle
	reloadPending bool
}

func newApp(opts options) (*app, error) {
	cfg, err := opts.Loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if opts.Settings != nil {
		opts.Settings(cfg.Settings)
	}

	mapID := opts.MapID
	if mapID == "" {
		mapID = cfg.Settings.Map
	}
	mapCfg, err := opts.Loader.LoadMap(mapID)
	if err != nil {
		return nil, err
	}
	world, err := system.LoadMap(mapCfg)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapID, err)
	}

	ctx := scene.NewContext(opts.Logger, rand.New(rand.NewSource(opts.Seed)))
	if opts.Audio != nil {
		ctx.Audio = opts.Audio(cfg.Settings, cfg.Catalog)
	}

	a := &app{
		ctx:      ctx,
		loader:   opts.Loader,
		settings: cfg.Settings,
		catalog:  cfg.Catalog,

		battleInput: opts.BattleInput,
		view:        opts.View,
	}

	// Both combatants must resolve before the first encounter can fire
	if _, _, err := a.combatants(); err != nil {
		return nil, err
	}

	a.overworld, err = overworld.New(ctx, overworld.Options{
		Settings:    cfg.Settings,
		Map:         mapCfg,
		World:       world,
		Input:       opts.Input,
		StartBattle: a.startBattle,
		Record:      opts.Record,
		Seed:        opts.Seed,
		Debug:       opts.Debug,
	})
	if err != nil {
		return nil, err
	}

	display := cfg.Settings.Display
	a.game = game.New(a.overworld, ctx, display.ScreenWidth, display.ScreenHeight)
	a.game.SetTPS(display.Framerate)

	ctx.Logger.Info("game ready",
		"map", mapCfg.ID,
		"boundaries", len(world.Boundaries),
		"battleZones", len(world.BattleZones),
		"seed", opts.Seed,
	)
	return a, nil
}

// combatants builds fresh fighters from the current catalog
func (a *app) combatants() (player, enemy *entity.Combatant, err error) {
	pdef, err := a.catalog.Monster(a.settings.Battle.Player)
	if err != nil {
		return nil, nil, err
	}
	edef, err := a.catalog.Monster(a.settings.Battle.Enemy)
	if err != nil {
		return nil, nil, err
	}
	if player, err = entity.NewCombatant(pdef, a.catalog.Attacks); err != nil {
		return nil, nil, err
	}
	if enemy, err = entity.NewCombatant(edef, a.catalog.Attacks); err != nil {
		return nil, nil, err
	}
	return player, enemy, nil
}

// startBattle builds the arena for a new encounter
func (a *app) startBattle() (scene.Scene, error) {
	player, enemy, err := a.combatants()
	if err != nil {
		return nil, err
	}

	var view arena.View
	if a.view != nil {
		view = a.view()
	}

	display := a.settings.Display
	return arena.New(a.ctx, arena.Options{
		Player:     player,
		Enemy:      enemy,
		Catalog:    a.catalog.Attacks,
		Input:      a.battleInput,
		View:       view,
		Background: a.settings.Battle.Background,
		ScreenW:    display.ScreenWidth,
		ScreenH:    display.ScreenHeight,
		Framerate:  display.Framerate,
		Return:     func() scene.Scene { return a.overworld },
	})
}
