package battle

// ActionKind tags a queued action for logging and inspection
type ActionKind int

const (
	ActionCounter ActionKind = iota
	ActionFaint
	ActionEnd
)

// String returns the string representation of the action kind
func (k ActionKind) String() string {
	switch k {
	case ActionCounter:
		return "Counter"
	case ActionFaint:
		return "Faint"
	case ActionEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Action is a deferred battle event, run when the player dismisses the dialog
type Action struct {
	Kind ActionKind
	Run  func()
}

// ActionQueue is a FIFO of pending actions
type ActionQueue struct {
	items []Action
}

// Push appends a to the back of the queue
func (q *ActionQueue) Push(a Action) {
	q.items = append(q.items, a)
}

// Pop removes and returns the front action
func (q *ActionQueue) Pop() (Action, bool) {
	if len(q.items) == 0 {
		return Action{}, false
	}
	a := q.items[0]
	q.items[0] = Action{}
	q.items = q.items[1:]
	return a, true
}

// Len returns the number of queued actions
func (q *ActionQueue) Len() int {
	return len(q.items)
}

// Kinds returns the queued action kinds in order
func (q *ActionQueue) Kinds() []ActionKind {
	kinds := make([]ActionKind, len(q.items))
	for i, a := range q.items {
		kinds[i] = a.Kind
	}
	return kinds
}

// Clear drops every queued action
func (q *ActionQueue) Clear() {
	q.items = nil
}
