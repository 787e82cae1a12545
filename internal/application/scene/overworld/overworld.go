// Package overworld provides the map exploration scene.
package overworld

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/natac13/top-down-cartoon-game/internal/application/battle"
	"github.com/natac13/top-down-cartoon-game/internal/application/clock"
	"github.com/natac13/top-down-cartoon-game/internal/application/scene"
	"github.com/natac13/top-down-cartoon-game/internal/application/state"
	"github.com/natac13/top-down-cartoon-game/internal/application/system"
	"github.com/natac13/top-down-cartoon-game/internal/application/tween"
	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/config"
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/render"
)

// Transition timings
const (
	flashDuration = 0.4
	flashRepeats  = 3
	coverDuration = 0.4
)

var colorBG = color.RGBA{26, 26, 46, 255}

// Options configures an overworld
type Options struct {
	Settings *config.SettingsConfig
	Map      *config.MapConfig
	World    *entity.World
	Input    system.InputSource

	// StartBattle builds the battle scene once the screen is covered
	StartBattle func() (scene.Scene, error)

	// Record is the replay file written on exit, empty to disable
	Record string
	Seed   int64
	Debug  bool
}

// Overworld is the scrolling map scene
type Overworld struct {
	ctx       *scene.Context
	world     *entity.World
	player    entity.Sprite
	ground    color.Color
	input     system.InputSource
	tracker   system.DirectionTracker
	movement  *system.MovementSystem
	encounter *system.EncounterSystem
	state     state.GameState
	gate      *clock.FrameGate
	handle    clock.Handle
	looping   bool
	started   bool
	debug     bool

	screenW int
	screenH int

	startBattle func() (scene.Scene, error)
	next        scene.Scene
	err         error

	recorder   *Recorder
	recordPath string
}

// New creates the overworld. The player is fixed at the centre of the
// screen; the world scrolls around it.
func New(ctx *scene.Context, opts Options) (*Overworld, error) {
	s := opts.Settings
	if s == nil {
		s = &config.SettingsConfig{}
		s.ApplyDefaults()
	}
	if opts.World == nil {
		return nil, fmt.Errorf("overworld: no world")
	}
	if opts.Input == nil {
		opts.Input = system.NewInputSystem()
	}

	tint, err := parseColor(s.Player.Color, colornames.Crimson)
	if err != nil {
		return nil, fmt.Errorf("player color: %w", err)
	}
	ground := color.Color(colornames.Yellowgreen)
	if opts.Map != nil {
		if ground, err = parseColor(opts.Map.Background, ground); err != nil {
			return nil, fmt.Errorf("map %s background: %w", opts.Map.ID, err)
		}
	}

	w, h := s.Display.ScreenWidth, s.Display.ScreenHeight
	pos := entity.Vec{
		X: float64(w)/2 - s.Player.Width/2,
		Y: float64(h)/2 - s.Player.Height/2,
	}
	player := entity.NewSprite(pos, s.Player.Width, s.Player.Height, entity.Frames{
		Max:  s.Player.Frames.Max,
		Hold: s.Player.Frames.Hold,
	})
	player.Tint = tint

	o := &Overworld{
		ctx:         ctx,
		world:       opts.World,
		player:      player,
		ground:      ground,
		input:       opts.Input,
		movement:    system.NewMovementSystem(s.Movement.Step),
		encounter:   system.NewEncounterSystem(s.Encounter.Rate, s.Encounter.MinOverlapRatio, system.RandDraw(ctx.Rand)),
		state:       state.StateExploring,
		gate:        clock.NewFrameGate(s.Display.Framerate),
		debug:       opts.Debug,
		screenW:     w,
		screenH:     h,
		startBattle: opts.StartBattle,
		recordPath:  opts.Record,
	}

	if opts.Record != "" {
		mapID := ""
		if opts.Map != nil {
			mapID = opts.Map.ID
		}
		o.recorder = NewRecorder(opts.Seed, mapID)
		log.Printf("Recording enabled: %s (seed: %d)", opts.Record, opts.Seed)
	}

	return o, nil
}

func parseColor(hex string, fallback color.Color) (color.Color, error) {
	if hex == "" {
		return fallback, nil
	}
	c, err := config.ParseHexColor(hex)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update reports a pending transition or a loop error (implements scene.Scene)
func (o *Overworld) Update(_ float64) (scene.Scene, error) {
	if o.err != nil {
		return nil, o.err
	}
	next := o.next
	o.next = nil
	return next, nil
}

// frame is the overworld's clock callback. It re-arms itself first so an
// encounter can cancel the loop from inside the tick.
func (o *Overworld) frame(ts float64) {
	o.handle = o.ctx.Clock.RequestFrame(o.frame)
	if !o.gate.Ready(ts) {
		return
	}
	o.tick()
}

// tick runs one frame of exploration
func (o *Overworld) tick() {
	in := o.input.GetInput()
	if o.recorder != nil {
		o.recorder.RecordFrame(in)
	}
	if in.ToggleDebug {
		o.debug = !o.debug
	}

	switch o.state {
	case state.StatePaused:
		if in.Pause {
			o.state = state.StateExploring
		}
		return
	case state.StateEncounter:
		return
	}
	if in.Pause {
		o.state = state.StatePaused
		return
	}

	dir := o.tracker.Update(in)
	o.player.Animate = dir != entity.DirNone
	if dir != entity.DirNone {
		o.player.Facing = dir
	}
	o.player.Advance()

	if zone, fired := o.encounter.Evaluate(o.player.Bounds(), o.world, in.Moving(), o.ctx.Session); fired {
		o.beginEncounter(zone)
		return
	}

	if o.state.AcceptsMovement() && !o.ctx.Session.Initiated {
		o.movement.Step(o.world, o.player.Bounds(), dir)
	}
}

// beginEncounter stops exploring and plays the transition into battle
func (o *Overworld) beginEncounter(zone int) {
	o.stopLoop()
	o.state = state.StateEncounter
	o.player.Animate = false

	id := o.ctx.Session.Begin()
	o.ctx.Logger.Info("encounter", "battle", id, "zone", zone, "offset", o.world.Offset)

	o.ctx.Audio.Stop(battle.ClipMap)
	o.ctx.Audio.Play(battle.ClipInitBattle)
	o.ctx.Audio.Play(battle.ClipBattle)

	overlay := o.ctx.Overlay
	o.ctx.Animator.Tween(tween.To(overlay, 1, tween.Options{
		Duration: flashDuration,
		Repeat:   flashRepeats,
		Mirror:   true,
		Ease:     tween.Linear,
	}), func() {
		o.ctx.Animator.Tween(tween.To(overlay, 1, tween.Options{Duration: coverDuration}), o.enterBattle)
	})
}

func (o *Overworld) enterBattle() {
	if o.startBattle == nil {
		o.err = fmt.Errorf("overworld: no battle scene")
		return
	}
	next, err := o.startBattle()
	if err != nil {
		o.err = fmt.Errorf("start battle: %w", err)
		return
	}
	o.next = next
}

func (o *Overworld) stopLoop() {
	if o.looping {
		o.ctx.Clock.Cancel(o.handle)
		o.looping = false
	}
}

// Draw renders the map, the player and any overlay
func (o *Overworld) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	render.World(screen, o.world, o.ground)
	if o.debug {
		render.Debug(screen, o.world)
	}
	render.Sprite(screen, &o.player)

	ebitenutil.DebugPrint(screen, "WASD/Arrows: Move | Tab: Debug | ESC: Pause")
	if o.debug {
		msg := fmt.Sprintf("offset: %.0f,%.0f\nbattles: %d\nstate: %s",
			o.world.Offset.X, o.world.Offset.Y, o.ctx.Session.Count, o.state)
		ebitenutil.DebugPrintAt(screen, msg, 10, 20)
	}

	if o.state == state.StatePaused {
		ebitenutil.DrawRect(screen, 0, 0, float64(o.screenW), float64(o.screenH), color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", o.screenW/2-50, o.screenH/2-20)
	}
}

// OnEnter arms the frame loop. The first entry starts the map music.
func (o *Overworld) OnEnter() {
	if !o.started {
		o.started = true
		o.ctx.Audio.Play(battle.ClipMap)
	}
	o.state = state.StateExploring
	o.tracker.Reset()
	o.gate.Reset()
	o.player.Animate = false
	o.player.ResetFrames()

	o.handle = o.ctx.Clock.RequestFrame(o.frame)
	o.looping = true
}

// OnExit cancels the frame loop
func (o *Overworld) OnExit() {
	o.stopLoop()
	o.SaveRecording()
}

// SaveRecording writes the input recorded so far
func (o *Overworld) SaveRecording() {
	if o.recorder == nil {
		return
	}

	filename := o.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := o.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, o.recorder.FrameCount())
	}
}

// World returns the scrolled map
func (o *Overworld) World() *entity.World {
	return o.world
}

// Player returns the player sprite
func (o *Overworld) Player() *entity.Sprite {
	return &o.player
}

// State returns the exploration state
func (o *Overworld) State() state.GameState {
	return o.state
}

// Looping reports whether the frame loop is armed
func (o *Overworld) Looping() bool {
	return o.looping
}
