// Package tui is the interactive Bubble Tea front end for the todo list.
// All state lives in the injected todo.Controller; the model only keeps
// widget state (focus, cursor, sizes) and re-reads derived views after
// every message.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// chromeHeight is the number of rows the view spends outside the list.
const chromeHeight = 14

// Options tune the widgets.
type Options struct {
	Placeholder   string
	CharLimit     int // 0 = unlimited
	ProgressWidth int
	Width, Height int // initial size until the first WindowSizeMsg
}

// Model implements tea.Model on top of a todo.Controller.
type Model struct {
	ctrl  *todo.Controller
	theme ui.Theme
	opts  Options

	keys  keyMap
	help  help.Model
	input textinput.Model
	list  list.Model
	focus focus

	width, height int
}

// New builds the model with the draft input focused.
func New(ctrl *todo.Controller, theme ui.Theme, opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = opts.CharLimit
	ti.SetValue(ctrl.Draft())

	l := list.New(nil, itemDelegate{theme: theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = theme.Muted

	h := help.New()
	h.Styles.ShortKey = theme.Accent
	h.Styles.ShortDesc = theme.Muted

	m := Model{
		ctrl:   ctrl,
		theme:  theme,
		opts:   opts,
		keys:   defaultKeyMap(),
		help:   h,
		input:  ti,
		list:   l,
		width:  opts.Width,
		height: opts.Height,
	}
	m.resize()
	m.setFocus(focusInput)
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.SubmitDraft()
		// a blank draft stays in the box untouched
		m.input.SetValue(m.ctrl.Draft())
		m.input.CursorEnd()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Blur):
		cmd := m.setFocus(focusList)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.ctrl.Draft() {
		m.ctrl.SetDraft(v)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		cmd := m.setFocus(focusInput)
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.ctrl.Toggle(t.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.ctrl.Delete(t.ID)
		}
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.ClearCompleted()
	case key.Matches(msg, m.keys.All):
		m.ctrl.SetFilter(model.FilterAll)
	case key.Matches(msg, m.keys.Active):
		m.ctrl.SetFilter(model.FilterActive)
	case key.Matches(msg, m.keys.Completed):
		m.ctrl.SetFilter(model.FilterCompleted)
	case key.Matches(msg, m.keys.Cycle):
		m.ctrl.SetFilter(m.ctrl.Filter().Next())
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.refresh()
	return m, nil
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.list.SetDelegate(itemDelegate{theme: m.theme, focused: f == focusList})
	m.keys.sync(f, m.ctrl.CompletedCount())

	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// refresh pulls the derived views back out of the controller.
func (m *Model) refresh() {
	items := toItems(m.ctrl.Visible())
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	m.keys.sync(m.focus, m.ctrl.CompletedCount())
}

func (m *Model) resize() {
	inner := max(m.width-4, 10)
	m.list.SetSize(inner, max(m.height-chromeHeight, 3))
	m.input.Width = max(inner-len(m.input.Prompt)-1, 1)
	m.help.Width = inner
}

func (m Model) selected() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}
