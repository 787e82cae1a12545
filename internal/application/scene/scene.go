// Package scene defines the Scene interface for game screens.
//
// Each game screen (overworld, battle) implements the Scene interface to
// handle its own update logic and rendering.
package scene

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/natac13/top-down-cartoon-game/internal/application/battle"
	"github.com/natac13/top-down-cartoon-game/internal/application/clock"
	"github.com/natac13/top-down-cartoon-game/internal/application/tween"
)

// Scene represents a game screen (overworld, battle, etc.)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update reports the scene's pending transition.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Scenes arm their frame loop here.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Scenes cancel their frame loop here.
	OnExit()
}

// Context carries the services shared by every scene
type Context struct {
	Clock    *clock.Clock
	Animator *tween.Animator
	Audio    battle.AudioPlayer
	Session  *battle.Session
	Logger   *slog.Logger
	// Rand feeds encounter draws and BattleRand the enemy's choices. Battles
	// run on unrecorded input, so they must never draw from Rand.
	Rand       *rand.Rand
	BattleRand *rand.Rand
	// Overlay is the opacity of the full-screen black fade, 0..1
	Overlay *float64
}

// NewContext creates a context with a fresh clock, animator and session.
// The battle source is seeded from rng. Audio is silent until replaced.
func NewContext(logger *slog.Logger, rng *rand.Rand) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Context{
		Clock:      clock.New(),
		Animator:   tween.NewAnimator(),
		Audio:      silent{},
		Session:    &battle.Session{},
		Logger:     logger,
		Rand:       rng,
		BattleRand: rand.New(rand.NewSource(rng.Int63())),
		Overlay:    new(float64),
	}
}

type silent struct{}

func (silent) Play(string) {}
func (silent) Stop(string) {}
