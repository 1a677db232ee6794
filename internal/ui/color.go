package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorMode strips all color output when disable is set. The mono theme
// disables color as well.
func SetColorMode(t Theme, disable bool) {
	if disable || t.Name == "mono" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render(t.SymDone+" "+msg))
}

func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render("✖ "+msg))
}
