package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorMode applies the configured color mode to the default renderer.
// "auto" keeps lipgloss's own detection unless stdout is not a terminal.
func SetColorMode(mode string, tty bool) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		if !tty {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}
