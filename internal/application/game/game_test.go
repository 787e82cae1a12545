package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/natac13/top-down-cartoon-game/internal/application/clock"
	"github.com/natac13/top-down-cartoon-game/internal/application/scene"
	"github.com/natac13/top-down-cartoon-game/internal/application/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

// loopScene arms a frame loop on enter and cancels it on exit
type loopScene struct {
	clk    *clock.Clock
	handle clock.Handle
	frames int
	next   scene.Scene
}

func (l *loopScene) loop(float64) {
	l.handle = l.clk.RequestFrame(l.loop)
	l.frames++
}

func (l *loopScene) Update(float64) (scene.Scene, error) {
	next := l.next
	l.next = nil
	return next, nil
}

func (l *loopScene) Draw(*ebiten.Image) {}

func (l *loopScene) OnEnter() {
	l.handle = l.clk.RequestFrame(l.loop)
}

func (l *loopScene) OnExit() {
	l.clk.Cancel(l.handle)
}

func createTestGame(initial scene.Scene) (*Game, *scene.Context) {
	ctx := scene.NewContext(nil, nil)
	return New(initial, ctx, 320, 240), ctx
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g, _ := createTestGame(mockInitial)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Same(t, mockInitial, g.Current())
}

func TestNew_NilContext(t *testing.T) {
	g := New(&mockScene{}, nil, 320, 240)
	assert.NoError(t, g.Update())
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g, _ := createTestGame(mockInitial)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.Equal(t, uint64(1), g.Frame())
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g, ctx := createTestGame(mockInitial)

	// Create a dummy image for testing
	img := ebiten.NewImage(320, 240)
	g.Draw(img)
	*ctx.Overlay = 0.5
	g.Draw(img)

	assert.Equal(t, 2, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	mockInitial := &mockScene{}
	g, _ := createTestGame(mockInitial)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g, _ := createTestGame(scene1)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	g, _ := createTestGame(scene1)

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g, _ := createTestGame(scene1)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}

func TestGame_TicksClockAndAnimator(t *testing.T) {
	g, ctx := createTestGame(&mockScene{})

	var stamps []float64
	ctx.Clock.RequestFrame(func(ts float64) { stamps = append(stamps, ts) })

	var v float64
	ctx.Animator.Tween(tween.To(&v, 1, tween.Options{Duration: 0.5, Ease: tween.Linear}), nil)

	for i := 0; i < 31; i++ {
		require.NoError(t, g.Update())
	}

	require.Len(t, stamps, 1, "one-shot callback runs once")
	assert.InDelta(t, 1000.0/60.0, stamps[0], 1e-9)
	assert.InDelta(t, 1.0, v, 1e-6)
}

func TestGame_SetTPS(t *testing.T) {
	g, ctx := createTestGame(&mockScene{})
	g.SetTPS(30)

	var got float64
	ctx.Clock.RequestFrame(func(ts float64) { got = ts })
	require.NoError(t, g.Update())

	assert.InDelta(t, 1000.0/30.0, got, 1e-9)
}

func TestGame_SingleLoopAcrossTransitions(t *testing.T) {
	ctx := scene.NewContext(nil, nil)
	overworld := &loopScene{clk: ctx.Clock}
	arena := &loopScene{clk: ctx.Clock}
	g := New(overworld, ctx, 320, 240)

	for i := 0; i < 3; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, 3, overworld.frames)

	overworld.next = arena
	require.NoError(t, g.Update())
	assert.Equal(t, 1, ctx.Clock.Pending(), "only the arena loop is armed")

	for i := 0; i < 3; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, 4, overworld.frames, "overworld loop stopped after exit")
	assert.Equal(t, 3, arena.frames)

	arena.next = overworld
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.Equal(t, 1, ctx.Clock.Pending())
	assert.Equal(t, 4, arena.frames)
}

func TestGame_PreUpdate(t *testing.T) {
	s := &mockScene{}
	g, _ := createTestGame(s)

	calls := 0
	g.SetPreUpdate(func() error {
		calls++
		return nil
	})
	require.NoError(t, g.Update())
	assert.Equal(t, 1, calls)

	stop := errors.New("stop")
	g.SetPreUpdate(func() error { return stop })
	assert.ErrorIs(t, g.Update(), stop)
	assert.Equal(t, 1, s.updateCalled, "scene not updated after hook error")
}
