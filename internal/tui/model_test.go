package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (Model, *todo.Controller) {
	t.Helper()
	ctrl := todo.NewController()
	theme, err := ui.NewTheme("mono")
	require.NoError(t, err)

	m := New(ctrl, theme, Options{
		Placeholder:   "Add a new todo...",
		ProgressWidth: 10,
		Width:         120,
		Height:        40,
	})
	return m, ctrl
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func addTodos(t *testing.T, m Model, texts ...string) Model {
	t.Helper()
	for _, s := range texts {
		m = send(t, m, runes(s), keyEnter)
	}
	return m
}

func view(m Model) string { return ansi.Strip(m.View()) }

func TestModel_InitialView(t *testing.T) {
	m, _ := newTestModel(t)
	out := view(m)

	assert.Contains(t, out, "✓ My Todo List")
	assert.Contains(t, out, "Add a new todo...")
	assert.Contains(t, out, "Total: 0  Active: 0  Completed: 0")
	assert.Contains(t, out, "No todos yet. Add one to get started!")
	assert.Contains(t, out, "All")
	assert.Contains(t, out, "Completed")
	assert.NotContains(t, out, "clear completed")
	assert.NotNil(t, m.Init())
}

func TestModel_TypingAndSubmitting(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, runes("Buy milk"))
	assert.Equal(t, "Buy milk", ctrl.Draft(), "every edit reaches the controller")
	assert.Equal(t, 0, ctrl.TotalCount())

	m = send(t, m, keyEnter)
	require.Equal(t, 1, ctrl.TotalCount())
	assert.Equal(t, "Buy milk", ctrl.Todos()[0].Text)
	assert.Empty(t, ctrl.Draft())
	assert.Empty(t, m.input.Value())

	out := view(m)
	assert.Contains(t, out, "[ ] Buy milk")
	assert.Contains(t, out, "Total: 1  Active: 1  Completed: 0")
	assert.NotContains(t, out, "No todos yet")
}

func TestModel_BlankSubmitKeepsDraft(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, runes("   "), keyEnter)

	assert.Equal(t, 0, ctrl.TotalCount())
	assert.Equal(t, "   ", ctrl.Draft())
	assert.Equal(t, "   ", m.input.Value())
	assert.Contains(t, view(m), "No todos yet. Add one to get started!")
}

func TestModel_QOnlyQuitsFromList(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, runes("q"))
	assert.Equal(t, "q", ctrl.Draft())
	assert.Equal(t, focusInput, m.focus)

	m = send(t, m, keyTab)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CtrlCAlwaysQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_FocusSwitching(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, focusInput, m.focus)

	m = send(t, m, keyEsc)
	assert.Equal(t, focusList, m.focus)
	assert.False(t, m.input.Focused())

	m = send(t, m, runes("a"))
	assert.Equal(t, focusInput, m.focus)
	assert.True(t, m.input.Focused())

	m = send(t, m, keyTab, keyTab)
	assert.Equal(t, focusInput, m.focus)
}

func TestModel_ToggleAndClear(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addTodos(t, m, "alpha", "bravo", "charlie")
	m = send(t, m, keyTab, keyDown, keySpace)

	require.Equal(t, 1, ctrl.CompletedCount())
	assert.True(t, ctrl.Todos()[1].Completed)

	out := view(m)
	assert.Contains(t, out, "[x] bravo")
	assert.Contains(t, out, "Total: 3  Active: 2  Completed: 1")
	assert.Contains(t, out, "clear completed (1)")

	m = send(t, m, runes("c"))
	assert.Equal(t, 2, ctrl.TotalCount())
	assert.Equal(t, 0, ctrl.CompletedCount())
	assert.NotContains(t, view(m), "bravo")
	assert.NotContains(t, view(m), "clear completed")
}

func TestModel_Filters(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addTodos(t, m, "alpha", "bravo", "charlie")
	m = send(t, m, keyTab, keyDown, keyEnter)

	m = send(t, m, runes("3"))
	assert.Equal(t, model.FilterCompleted, ctrl.Filter())
	out := view(m)
	assert.Contains(t, out, "bravo")
	assert.NotContains(t, out, "alpha")
	assert.NotContains(t, out, "charlie")

	m = send(t, m, runes("2"))
	out = view(m)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "charlie")
	assert.NotContains(t, out, "bravo")

	m = send(t, m, runes("1"))
	assert.Len(t, m.list.Items(), 3)

	m = send(t, m, runes("f"))
	assert.Equal(t, model.FilterActive, ctrl.Filter())
	m = send(t, m, runes("f"), runes("f"))
	assert.Equal(t, model.FilterAll, ctrl.Filter())
}

func TestModel_EmptyFilterMessage(t *testing.T) {
	m, _ := newTestModel(t)
	m = addTodos(t, m, "alpha")
	m = send(t, m, keyTab, runes("3"))

	out := view(m)
	assert.Contains(t, out, "No completed todos")
	assert.NotContains(t, out, "No todos yet")

	m = send(t, m, runes("1"), keyEnter, runes("2"))
	assert.Contains(t, view(m), "No active todos")
}

func TestModel_ToggleUnderActiveFilterClampsCursor(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addTodos(t, m, "alpha", "bravo")
	m = send(t, m, keyTab, runes("2"), keyDown, keyEnter)

	assert.True(t, ctrl.Todos()[1].Completed)
	require.Len(t, m.list.Items(), 1)
	assert.Equal(t, 0, m.list.Index())

	m = send(t, m, keyEnter)
	assert.Equal(t, 2, ctrl.CompletedCount())
	assert.Contains(t, view(m), "No active todos")
}

func TestModel_Delete(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addTodos(t, m, "alpha", "bravo", "charlie")
	m = send(t, m, keyTab, keyDown, keyDown, runes("d"))

	require.Equal(t, 2, ctrl.TotalCount())
	assert.Equal(t, "alpha", ctrl.Todos()[0].Text)
	assert.Equal(t, "bravo", ctrl.Todos()[1].Text)
	assert.Equal(t, 1, m.list.Index())

	m = send(t, m, runes("x"), runes("d"))
	assert.True(t, ctrl.IsEmptyOverall())

	// nothing selected: further deletes are harmless
	m = send(t, m, runes("d"), keySpace)
	assert.Contains(t, view(m), "No todos yet")
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	assert.Equal(t, 60, m.width)
	assert.Equal(t, 56, m.list.Width())
	assert.Equal(t, 16, m.list.Height())
}

func TestModel_LongTextIsTruncated(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 30})
	long := "this todo text is far longer than the narrow window allows"
	m = addTodos(t, m, long)

	assert.Equal(t, long, ctrl.Todos()[0].Text, "stored text is never shortened")
	out := view(m)
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "this todo text")
}

func TestModel_ProgressLineTallies(t *testing.T) {
	m, _ := newTestModel(t)
	m = addTodos(t, m, "alpha", "bravo", "charlie")
	m = send(t, m, keyTab, keyEnter)

	// mono theme: "x" marks done, "-" marks pending
	out := view(m)
	assert.Contains(t, out, " 33%  x 1  - 2")
}
