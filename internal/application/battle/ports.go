package battle

import (
	"github.com/natac13/top-down-cartoon-game/internal/application/tween"
	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
)

// Animator runs tweens on float fields.
// Completion callbacks only drive visuals; battle rules never wait on them.
// Settle finishes whatever is animating a field so a new effect can own it.
type Animator interface {
	Tween(step tween.Step, done func())
	Sequence(steps []tween.Step, done func())
	Settle(target *float64)
}

// AudioPlayer plays named clips
type AudioPlayer interface {
	Play(clip string)
	Stop(clip string)
}

// UI is the battle interface: attack controls and the dialog box
type UI interface {
	ShowAttacks(attacks []entity.Attack)
	ShowDialog(text string)
	HideDialog()
	Show()
	Hide()
}

// Audio clip ids used by the battle flow
const (
	ClipMap        = "map"
	ClipInitBattle = "initBattle"
	ClipBattle     = "battle"
	ClipVictory    = "victory"
)
