package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConfigureColor picks the lipgloss color profile. Color is disabled when
// enabled is false or NO_COLOR is set; otherwise the terminal is probed.
func ConfigureColor(enabled bool) {
	if !enabled || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
}

// ColorEnabled reports whether styled output will carry color.
func ColorEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}
