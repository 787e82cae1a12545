// Package arena provides the turn-based battle scene.
package arena

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/natac13/top-down-cartoon-game/internal/application/battle"
	"github.com/natac13/top-down-cartoon-game/internal/application/clock"
	"github.com/natac13/top-down-cartoon-game/internal/application/scene"
	"github.com/natac13/top-down-cartoon-game/internal/application/system"
	"github.com/natac13/top-down-cartoon-game/internal/application/tween"
	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/config"
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/render"
)

const revealDuration = 0.4

// Options configures an arena
type Options struct {
	Player  *entity.Combatant
	Enemy   *entity.Combatant
	Catalog entity.AttackCatalog
	Input   system.InputSource

	// Background is a "#RRGGBB" colour, empty for the default sky
	Background string
	ScreenW    int
	ScreenH    int
	Framerate  int

	// Return gives the scene to resume once the battle has ended
	Return func() scene.Scene

	// View replaces the ebitenui interface, mainly for tests
	View View
}

// Arena is the battle scene
type Arena struct {
	ctx     *scene.Context
	battle  *battle.Battle
	view    View
	intents *system.IntentQueue
	input   system.InputSource
	player  *entity.Combatant
	enemy   *entity.Combatant
	bg      color.Color
	gate    *clock.FrameGate
	handle  clock.Handle
	looping bool

	screenW int
	screenH int

	back func() scene.Scene
	next scene.Scene
	err  error
}

// New creates a battle scene. The fight starts when the scene is entered.
func New(ctx *scene.Context, opts Options) (*Arena, error) {
	if opts.Player == nil || opts.Enemy == nil {
		return nil, fmt.Errorf("arena: missing combatant")
	}
	if opts.Input == nil {
		opts.Input = system.NewInputSystem()
	}

	var bg color.Color = colornames.Lightblue
	if opts.Background != "" {
		c, err := config.ParseHexColor(opts.Background)
		if err != nil {
			return nil, fmt.Errorf("arena background: %w", err)
		}
		bg = c
	}

	a := &Arena{
		ctx:     ctx,
		intents: &system.IntentQueue{},
		input:   opts.Input,
		player:  opts.Player,
		enemy:   opts.Enemy,
		bg:      bg,
		gate:    clock.NewFrameGate(opts.Framerate),
		screenW: opts.ScreenW,
		screenH: opts.ScreenH,
		back:    opts.Return,
	}

	a.view = opts.View
	if a.view == nil {
		a.view = newUIView(a.intents, opts.ScreenW, opts.ScreenH)
	}

	a.battle = battle.New(battle.Deps{
		Session:  ctx.Session,
		Catalog:  opts.Catalog,
		Animator: ctx.Animator,
		Audio:    ctx.Audio,
		UI:       a.view,
		Overlay:  ctx.Overlay,
		Rand:     ctx.BattleRand,
		Logger:   ctx.Logger,
		OnEnd:    a.finish,
	})

	return a, nil
}

// Update reports a pending transition or a loop error (implements scene.Scene)
func (a *Arena) Update(_ float64) (scene.Scene, error) {
	if a.err != nil {
		return nil, a.err
	}
	next := a.next
	a.next = nil
	return next, nil
}

func (a *Arena) frame(ts float64) {
	a.handle = a.ctx.Clock.RequestFrame(a.frame)
	if !a.gate.Ready(ts) {
		return
	}
	if err := a.tick(); err != nil {
		a.stopLoop()
		a.err = err
	}
}

// tick turns keys and clicks into intents and applies them in order
func (a *Arena) tick() error {
	in := a.input.GetInput()
	if in.Attack > 0 && in.Attack <= len(a.player.Attacks) {
		a.intents.Push(system.SelectAttackIntent{AttackID: a.player.Attacks[in.Attack-1].ID})
	}
	if in.Confirm {
		a.intents.Push(system.DismissIntent{})
	}
	a.view.Update()

	for _, intent := range a.intents.Drain() {
		switch i := intent.(type) {
		case system.SelectAttackIntent:
			if err := a.battle.SelectAttack(i.AttackID); err != nil {
				return err
			}
		case system.DismissIntent:
			// Only an open dialog can be dismissed
			if a.battle.Dialog() != "" {
				a.battle.Dismiss()
			}
		}
	}

	a.player.Advance()
	a.enemy.Advance()
	return nil
}

// finish runs once the end sequence has covered the screen
func (a *Arena) finish() {
	a.stopLoop()
	if a.back == nil {
		a.err = fmt.Errorf("arena: nowhere to return to")
		return
	}
	a.next = a.back()
}

func (a *Arena) stopLoop() {
	if a.looping {
		a.ctx.Clock.Cancel(a.handle)
		a.looping = false
	}
}

// Draw renders both combatants, their health bars and the battle interface
func (a *Arena) Draw(screen *ebiten.Image) {
	screen.Fill(a.bg)

	render.Sprite(screen, &a.enemy.Sprite)
	render.Sprite(screen, &a.player.Sprite)

	playerBar, enemyBar := a.battle.HealthBars()
	render.HealthBar(screen, a.enemy.Name, 50, 50, 250, enemyBar)
	render.HealthBar(screen, a.player.Name, float64(a.screenW)-300, float64(a.screenH-panelHeight)-90, 250, playerBar)

	a.view.Draw(screen)
}

// OnEnter starts the fight, reveals the arena and arms the frame loop
func (a *Arena) OnEnter() {
	a.battle.Start(a.player, a.enemy)
	a.ctx.Animator.Tween(tween.To(a.ctx.Overlay, 0, tween.Options{Duration: revealDuration}), nil)

	a.gate.Reset()
	a.handle = a.ctx.Clock.RequestFrame(a.frame)
	a.looping = true
}

// OnExit cancels the frame loop
func (a *Arena) OnExit() {
	a.stopLoop()
}

// Battle exposes the state machine
func (a *Arena) Battle() *battle.Battle {
	return a.battle
}

// Intents is the queue UI callbacks push onto
func (a *Arena) Intents() *system.IntentQueue {
	return a.intents
}

// Looping reports whether the frame loop is armed
func (a *Arena) Looping() bool {
	return a.looping
}
