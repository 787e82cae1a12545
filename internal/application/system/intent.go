package system

// Intent represents a battle action the player wants to perform
type Intent interface {
	isIntent()
}

// SelectAttackIntent picks an attack during a battle
type SelectAttackIntent struct {
	AttackID string
}

func (SelectAttackIntent) isIntent() {}

// DismissIntent acknowledges the battle dialog
type DismissIntent struct{}

func (DismissIntent) isIntent() {}

// IntentQueue collects intents raised during a tick, e.g. from UI callbacks
type IntentQueue struct {
	items []Intent
}

// Push records an intent
func (q *IntentQueue) Push(i Intent) {
	q.items = append(q.items, i)
}

// Drain returns the collected intents in order and empties the queue
func (q *IntentQueue) Drain() []Intent {
	items := q.items
	q.items = nil
	return items
}

// Len returns the number of pending intents
func (q *IntentQueue) Len() int {
	return len(q.items)
}
