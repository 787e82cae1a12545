// Package battle implements the turn-based battle state machine.
//
// Damage is resolved synchronously when an attack is chosen. Everything that
// follows (counter attacks, faints, the end sequence) is pushed onto a FIFO
// action queue and runs one entry per dialog dismissal.
package battle

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/natac13/top-down-cartoon-game/internal/application/tween"
	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
)

// Phase is the battle's position in its lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSelecting
	PhaseResolving
	PhaseEnding
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSelecting:
		return "Selecting"
	case PhaseResolving:
		return "Resolving"
	case PhaseEnding:
		return "Ending"
	default:
		return "Unknown"
	}
}

// Animation constants
const (
	lungeDistance  = 15.0
	lungeDuration  = 0.2
	strikeDuration = 0.1
	healthDuration = 0.2
	shakeDistance  = 10.0
	shakeDuration  = 0.08
	hitRepeats     = 5
	faintDrop      = 20.0
	faintDuration  = 0.3
	fadeInDuration = 0.4
	fadeOutDelay   = 0.5
	fadeOutTime    = 0.8
)

// Deps are the collaborators a battle talks to
type Deps struct {
	Session  *Session
	Catalog  entity.AttackCatalog
	Animator Animator
	Audio    AudioPlayer
	UI       UI
	// Overlay is the shared full-screen fade opacity
	Overlay *float64
	Rand    *rand.Rand
	Logger  *slog.Logger
	// OnEnd runs once the screen is fully covered at the end of a battle
	OnEnd func()
}

// Battle is one fight between the player's combatant and an enemy
type Battle struct {
	deps   Deps
	phase  Phase
	player *entity.Combatant
	enemy  *entity.Combatant
	queue  ActionQueue
	dialog string

	// Displayed health bar widths, 0..100
	playerBar float64
	enemyBar  float64
}

// New creates an idle battle
func New(deps Deps) *Battle {
	if deps.Session == nil {
		deps.Session = &Session{}
	}
	if deps.Catalog == nil {
		deps.Catalog = entity.DefaultAttacks()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Overlay == nil {
		deps.Overlay = new(float64)
	}
	return &Battle{deps: deps, phase: PhaseIdle}
}

// Start begins the fight and waits for the player's first attack
func (b *Battle) Start(player, enemy *entity.Combatant) {
	b.player = player
	b.enemy = enemy
	b.queue.Clear()
	b.playerBar = 100
	b.enemyBar = 100
	b.dialog = ""

	if b.deps.UI != nil {
		b.deps.UI.HideDialog()
		b.deps.UI.ShowAttacks(player.Attacks)
		b.deps.UI.Show()
	}
	b.play(ClipBattle)

	b.phase = PhaseSelecting
	b.deps.Logger.Info("battle started",
		"battle", b.deps.Session.ID,
		"player", player.Name,
		"enemy", enemy.Name,
	)
}

// SelectAttack resolves the player's attack. It is ignored outside the
// selecting phase. An id missing from the catalog is a data error.
func (b *Battle) SelectAttack(id string) error {
	if b.phase != PhaseSelecting {
		b.deps.Logger.Debug("attack ignored", "attack", id, "phase", b.phase)
		return nil
	}

	attack, err := b.deps.Catalog.Lookup(id)
	if err != nil {
		return fmt.Errorf("select attack: %w", err)
	}

	b.perform(b.player, b.enemy, attack)
	b.phase = PhaseResolving

	if b.enemy.Fainted() {
		b.queueDefeat(b.enemy)
		return nil
	}

	if len(b.enemy.Attacks) == 0 {
		return nil
	}
	counter := b.enemy.Attacks[b.deps.Rand.Intn(len(b.enemy.Attacks))]
	b.queue.Push(Action{
		Kind: ActionCounter,
		Run: func() {
			b.perform(b.enemy, b.player, counter)
			if b.player.Fainted() {
				b.queueDefeat(b.player)
			}
		},
	})
	return nil
}

// Dismiss acknowledges the dialog. It runs exactly one queued action, or
// hands control back to the player once the queue has drained.
func (b *Battle) Dismiss() {
	b.hideDialog()

	action, ok := b.queue.Pop()
	if !ok {
		if b.phase == PhaseResolving {
			b.phase = PhaseSelecting
		}
		return
	}

	b.deps.Logger.Debug("battle action", "battle", b.deps.Session.ID, "kind", action.Kind)
	action.Run()
}

// Phase returns the current phase
func (b *Battle) Phase() Phase {
	return b.phase
}

// Queue exposes the pending actions
func (b *Battle) Queue() *ActionQueue {
	return &b.queue
}

// Player returns the player's combatant
func (b *Battle) Player() *entity.Combatant {
	return b.player
}

// Enemy returns the opponent
func (b *Battle) Enemy() *entity.Combatant {
	return b.enemy
}

// Dialog returns the current dialog text, empty when hidden
func (b *Battle) Dialog() string {
	return b.dialog
}

// HealthBars returns the displayed bar widths in percent
func (b *Battle) HealthBars() (player, enemy float64) {
	return b.playerBar, b.enemyBar
}

// perform applies damage immediately and starts the attack animation
func (b *Battle) perform(attacker, recipient *entity.Combatant, attack entity.Attack) {
	recipient.TakeDamage(attack.Damage)
	b.showDialog(fmt.Sprintf("%s used %s", attacker.Name, attack.Name))
	b.play(attack.InitClip)

	b.deps.Logger.Debug("attack",
		"battle", b.deps.Session.ID,
		"attacker", attacker.Name,
		"attack", attack.ID,
		"recipient", recipient.Name,
		"health", recipient.Health,
	)

	if b.deps.Animator == nil {
		return
	}

	d := lungeDistance
	if attacker.IsEnemy {
		d = -d
	}
	x := &attacker.Position.X
	b.deps.Animator.Settle(x)
	b.deps.Animator.Sequence([]tween.Step{
		tween.By(x, -d, tween.Options{Duration: lungeDuration}),
		tween.By(x, 2*d, tween.Options{Duration: strikeDuration}),
		tween.By(x, -d, tween.Options{Duration: lungeDuration}),
	}, func() {
		b.hit(recipient, attack)
	})
}

// hit plays the impact effects once the lunge lands
func (b *Battle) hit(recipient *entity.Combatant, attack entity.Attack) {
	bar := &b.enemyBar
	if !recipient.IsEnemy {
		bar = &b.playerBar
	}
	a := b.deps.Animator
	a.Settle(bar)
	a.Settle(&recipient.Position.X)
	a.Settle(&recipient.Opacity)
	a.Tween(tween.To(bar, recipient.HealthPercent(), tween.Options{Duration: healthDuration}), nil)
	a.Tween(tween.By(&recipient.Position.X, shakeDistance, tween.Options{
		Duration: shakeDuration,
		Repeat:   hitRepeats,
		Mirror:   true,
		Ease:     tween.Anticipate,
	}), nil)
	a.Tween(tween.To(&recipient.Opacity, 0, tween.Options{
		Duration: shakeDuration,
		Repeat:   hitRepeats,
		Mirror:   true,
		Ease:     tween.Linear,
	}), nil)
	b.play(attack.HitClip)
}

// queueDefeat pushes the faint of loser followed by the end sequence
func (b *Battle) queueDefeat(loser *entity.Combatant) {
	b.queue.Push(Action{Kind: ActionFaint, Run: func() { b.faint(loser) }})
	b.queue.Push(Action{Kind: ActionEnd, Run: b.end})
}

func (b *Battle) faint(c *entity.Combatant) {
	b.showDialog(fmt.Sprintf("%s fainted!", c.Name))
	if a := b.deps.Animator; a != nil {
		// The hit flicker and shake must not outlive the faint
		a.Settle(&c.Position.X)
		a.Settle(&c.Position.Y)
		a.Settle(&c.Opacity)
		a.Tween(tween.To(&c.Opacity, 0, tween.Options{Duration: faintDuration}), nil)
		a.Tween(tween.By(&c.Position.Y, faintDrop, tween.Options{Duration: faintDuration}), nil)
	}
	b.stop(ClipBattle)
	b.play(ClipVictory)
	b.phase = PhaseEnding
}

// end covers the screen, then hands back to the overworld and re-arms
// the encounter guard
func (b *Battle) end() {
	b.phase = PhaseEnding
	finish := func() {
		if b.deps.OnEnd != nil {
			b.deps.OnEnd()
		}
		if b.deps.Animator != nil {
			b.deps.Animator.Tween(tween.To(b.deps.Overlay, 0, tween.Options{
				Duration: fadeOutTime,
				Delay:    fadeOutDelay,
			}), nil)
		} else {
			*b.deps.Overlay = 0
		}
		b.play(ClipMap)
		if b.deps.UI != nil {
			b.deps.UI.Hide()
		}
		b.deps.Session.End()
		b.phase = PhaseIdle
		b.deps.Logger.Info("battle ended",
			"battle", b.deps.Session.ID,
			"player", b.player.Health,
			"enemy", b.enemy.Health,
		)
	}

	if b.deps.Animator == nil {
		*b.deps.Overlay = 1
		finish()
		return
	}
	b.deps.Animator.Tween(tween.To(b.deps.Overlay, 1, tween.Options{Duration: fadeInDuration}), finish)
}

func (b *Battle) showDialog(text string) {
	b.dialog = text
	if b.deps.UI != nil {
		b.deps.UI.ShowDialog(text)
	}
}

func (b *Battle) hideDialog() {
	b.dialog = ""
	if b.deps.UI != nil {
		b.deps.UI.HideDialog()
	}
}

func (b *Battle) play(clip string) {
	if clip != "" && b.deps.Audio != nil {
		b.deps.Audio.Play(clip)
	}
}

func (b *Battle) stop(clip string) {
	if b.deps.Audio != nil {
		b.deps.Audio.Stop(clip)
	}
}
