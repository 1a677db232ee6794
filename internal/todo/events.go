package todo

import "github.com/idilsaglam/tada/internal/model"

// EventKind names the operation that changed controller state.
type EventKind int

const (
	EventDraftChanged EventKind = iota
	EventAdded
	EventDeleted
	EventToggled
	EventCleared
	EventFilterChanged
)

func (k EventKind) String() string {
	switch k {
	case EventDraftChanged:
		return "draft_changed"
	case EventAdded:
		return "added"
	case EventDeleted:
		return "deleted"
	case EventToggled:
		return "toggled"
	case EventCleared:
		return "cleared"
	case EventFilterChanged:
		return "filter_changed"
	default:
		return "unknown"
	}
}

// Event describes one applied state change.
type Event struct {
	Kind    EventKind
	Todo    model.Todo   // added, deleted or toggled todo (after the change)
	Removed int          // number of todos dropped by EventCleared
	Filter  model.Filter // filter mode after the change
}

// Subscriber is invoked inline, after the change has been applied and
// before the operation returns.
type Subscriber func(Event)
