package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

const (
	appTitle        = "✓ My Todo List"
	emptyAllMessage = "No todos yet. Add one to get started!"
)

func (m Model) View() string {
	t := m.theme
	lines := []string{
		t.Title.Render(appTitle),
		"",
		m.input.View(),
		"",
		m.statsLine(),
		m.progressLine(),
		"",
		m.filterTabs(),
		"",
	}
	if m.ctrl.IsEmptyForFilter() {
		lines = append(lines, t.Muted.Render(m.emptyMessage()))
	} else {
		lines = append(lines, m.list.View())
	}
	lines = append(lines, "", m.help.View(m.keys))

	return ui.Panel(t, m.width, lines)
}

func (m Model) statsLine() string {
	t := m.theme
	return fmt.Sprintf("%s %s  %s %s  %s %s",
		t.Muted.Render("Total:"), t.Accent.Render(strconv.Itoa(m.ctrl.TotalCount())),
		t.Muted.Render("Active:"), t.Pending.Render(strconv.Itoa(m.ctrl.ActiveCount())),
		t.Muted.Render("Completed:"), t.Success.Render(strconv.Itoa(m.ctrl.CompletedCount())),
	)
}

// progressLine shows the bar followed by "✔ done  • pending" tallies.
func (m Model) progressLine() string {
	t := m.theme
	done, pending := m.ctrl.CompletedCount(), m.ctrl.ActiveCount()
	return fmt.Sprintf("%s  %s %d  %s %d",
		t.Muted.Render(ui.ProgressBar(done, done+pending, m.opts.ProgressWidth)),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
	)
}

func (m Model) filterTabs() string {
	tabs := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		style := m.theme.Tab
		if f == m.ctrl.Filter() {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(f.Label()))
	}
	return strings.Join(tabs, " ")
}

func (m Model) emptyMessage() string {
	if m.ctrl.IsEmptyOverall() {
		return emptyAllMessage
	}
	return fmt.Sprintf("No %s todos", m.ctrl.Filter())
}
