package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Tab, ActiveTab                lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

// NewTheme returns the named theme: classic, neon or mono.
func NewTheme(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Tab:          lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8")),
			ActiveTab:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•",
		}, nil
	case "mono":
		return Theme{
			Name:         "mono",
			Title:        lipgloss.NewStyle().Bold(true),
			Muted:        lipgloss.NewStyle(),
			Accent:       lipgloss.NewStyle(),
			Success:      lipgloss.NewStyle(),
			Error:        lipgloss.NewStyle(),
			Pending:      lipgloss.NewStyle(),
			Selected:     lipgloss.NewStyle().Bold(true),
			Done:         lipgloss.NewStyle(),
			Tab:          lipgloss.NewStyle().Padding(0, 1),
			ActiveTab:    lipgloss.NewStyle().Padding(0, 1).Reverse(true),
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
		}, nil
	case "classic", "":
		return DefaultTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// DefaultTheme returns the classic theme.
func DefaultTheme() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Tab:          lipgloss.NewStyle().Padding(0, 1).Faint(true),
		ActiveTab:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
	}
}
