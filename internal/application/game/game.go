// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/natac13/top-down-cartoon-game/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
//
// Each Update advances a deterministic timestamp, the animator and the
// frame clock before asking the current scene for a transition, so scene
// loops armed on the clock run exactly once per tick.
type Game struct {
	current scene.Scene
	ctx     *scene.Context
	screenW int
	screenH int
	dt      float64
	tps     int
	frame   uint64

	preUpdate func() error
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, ctx *scene.Context, screenW, screenH int) *Game {
	if ctx == nil {
		ctx = scene.NewContext(nil, nil)
	}
	g := &Game{
		current: initialScene,
		ctx:     ctx,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		tps:     60,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.preUpdate != nil {
		if err := g.preUpdate(); err != nil {
			return err
		}
	}

	g.frame++
	ts := float64(g.frame) * 1000 / float64(g.tps)
	g.ctx.Animator.Update(g.dt)
	g.ctx.Clock.Tick(ts)

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene and the fade overlay on top.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)

	if o := *g.ctx.Overlay; o > 0 {
		if o > 1 {
			o = 1
		}
		overlay := color.RGBA{A: uint8(255 * o)}
		ebitenutil.DrawRect(screen, 0, 0, float64(g.screenW), float64(g.screenH), overlay)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetTPS sets the tick rate used to derive frame timestamps
func (g *Game) SetTPS(tps int) {
	if tps > 0 {
		g.tps = tps
		g.dt = 1 / float64(tps)
	}
}

// SetPreUpdate installs a hook run at the start of every Update,
// e.g. to apply reloaded config between frames
func (g *Game) SetPreUpdate(fn func() error) {
	g.preUpdate = fn
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frame returns the number of updates run so far
func (g *Game) Frame() uint64 {
	return g.frame
}
