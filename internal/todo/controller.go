// Package todo holds the session todo list and the operations that change it.
package todo

import (
	"slices"
	"strings"

	"github.com/idilsaglam/tada/internal/model"
)

// Controller owns the todo list, the filter mode and the draft input.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Controller struct {
	todos  []model.Todo
	filter model.Filter
	draft  string

	ids  IDGenerator
	subs map[int]Subscriber
	next int
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDGenerator replaces the default counter-based generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Controller) {
		if g != nil {
			c.ids = g
		}
	}
}

// NewController returns an empty controller showing all todos.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		filter: model.FilterAll,
		ids:    &Sequence{},
		subs:   make(map[int]Subscriber),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn for every state change and returns a function
// that removes it again.
func (c *Controller) Subscribe(fn Subscriber) (unsubscribe func()) {
	id := c.next
	c.next++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

func (c *Controller) publish(ev Event) {
	ev.Filter = c.filter
	keys := make([]int, 0, len(c.subs))
	for k := range c.subs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		// a subscriber may unsubscribe another one mid-delivery
		fn, ok := c.subs[k]
		if !ok {
			continue
		}
		fn(ev)
	}
}

// SetDraft replaces the draft verbatim.
func (c *Controller) SetDraft(text string) {
	c.draft = text
	c.publish(Event{Kind: EventDraftChanged})
}

// Draft returns the pending input exactly as typed.
func (c *Controller) Draft() string { return c.draft }

// SubmitDraft turns the draft into a new todo at the end of the list.
// A blank draft is ignored and left as is.
func (c *Controller) SubmitDraft() {
	if strings.TrimSpace(c.draft) == "" {
		return
	}
	t := model.Todo{ID: c.ids.Next(), Text: c.draft}
	c.todos = append(c.todos, t)
	c.draft = ""
	c.publish(Event{Kind: EventAdded, Todo: t})
}

// Delete removes the todo with the given id. Unknown ids are ignored.
func (c *Controller) Delete(id model.ID) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	t := c.todos[i]
	c.todos = slices.Delete(c.todos, i, i+1)
	c.publish(Event{Kind: EventDeleted, Todo: t})
}

// Toggle flips the completion flag. Unknown ids are ignored.
func (c *Controller) Toggle(id model.ID) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.todos[i].Completed = !c.todos[i].Completed
	c.publish(Event{Kind: EventToggled, Todo: c.todos[i]})
}

// ClearCompleted drops every completed todo and keeps the rest in order.
func (c *Controller) ClearCompleted() {
	before := len(c.todos)
	c.todos = slices.DeleteFunc(c.todos, func(t model.Todo) bool { return t.Completed })
	if removed := before - len(c.todos); removed > 0 {
		c.publish(Event{Kind: EventCleared, Removed: removed})
	}
}

// SetFilter switches the filter mode.
func (c *Controller) SetFilter(f model.Filter) {
	c.filter = f
	c.publish(Event{Kind: EventFilterChanged})
}

// Filter returns the current filter mode.
func (c *Controller) Filter() model.Filter { return c.filter }

// Todos returns a copy of the whole list in insertion order.
func (c *Controller) Todos() []model.Todo {
	return slices.Clone(c.todos)
}

// Visible returns the todos matching the current filter, in list order.
func (c *Controller) Visible() []model.Todo {
	out := make([]model.Todo, 0, len(c.todos))
	for _, t := range c.todos {
		if c.filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (c *Controller) TotalCount() int { return len(c.todos) }

func (c *Controller) ActiveCount() int {
	n := 0
	for _, t := range c.todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (c *Controller) CompletedCount() int {
	return len(c.todos) - c.ActiveCount()
}

// IsEmptyOverall reports whether the list holds no todos at all.
func (c *Controller) IsEmptyOverall() bool { return len(c.todos) == 0 }

// IsEmptyForFilter reports whether nothing matches the current filter.
func (c *Controller) IsEmptyForFilter() bool { return len(c.Visible()) == 0 }

func (c *Controller) indexOf(id model.ID) int {
	return slices.IndexFunc(c.todos, func(t model.Todo) bool { return t.ID == id })
}
