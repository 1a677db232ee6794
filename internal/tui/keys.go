package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	// input focus
	Submit key.Binding
	Blur   key.Binding

	// list focus
	Toggle    key.Binding
	Delete    key.Binding
	Clear     key.Binding
	All       key.Binding
	Active    key.Binding
	Completed key.Binding
	Cycle     key.Binding
	Add       key.Binding
	Quit      key.Binding

	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Blur:      key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "list")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		All:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Active:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		Completed: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Cycle:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next filter")),
		Add:       key.NewBinding(key.WithKeys("a", "i", "tab"), key.WithHelp("a", "new todo")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// sync enables the bindings that belong to the focused pane. Clear is
// only offered while there is something to clear.
func (k *keyMap) sync(f focus, completed int) {
	inInput := f == focusInput
	k.Submit.SetEnabled(inInput)
	k.Blur.SetEnabled(inInput)
	for _, b := range []*key.Binding{
		&k.Toggle, &k.Delete, &k.All, &k.Active, &k.Completed, &k.Cycle, &k.Add, &k.Quit,
	} {
		b.SetEnabled(!inInput)
	}
	k.Clear.SetEnabled(!inInput && completed > 0)
	k.Clear.SetHelp("c", fmt.Sprintf("clear completed (%d)", completed))
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Submit, k.Blur,
		k.Toggle, k.Delete, k.Cycle, k.Clear, k.Add, k.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Blur},
		{k.Toggle, k.Delete, k.Clear},
		{k.All, k.Active, k.Completed, k.Cycle},
		{k.Add, k.Quit},
	}
}
