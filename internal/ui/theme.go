package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/zenith/internal/progress"
)

// zenith's palette: dawn sky over calm water.
var (
	Dawn   = lipgloss.Color("#FDBA74")
	Sun    = lipgloss.Color("#FACC15")
	Teal   = lipgloss.Color("#2DD4BF")
	Indigo = lipgloss.Color("#818CF8")
	Rose   = lipgloss.Color("#FB7185")
	Slate  = lipgloss.Color("#64748B")
	Night  = lipgloss.Color("#1E293B")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#F8FAFC")

	// Heat-map shades, lightest to darkest.
	HeatEmpty = lipgloss.Color("#334155")
	HeatLow   = lipgloss.Color("#115E59")
	HeatMid   = lipgloss.Color("#0D9488")
	HeatFull  = lipgloss.Color("#2DD4BF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Dawn)

	Subtitle = lipgloss.NewStyle().
			Foreground(Indigo)

	Success = lipgloss.NewStyle().
		Foreground(Teal)

	Error = lipgloss.NewStyle().
		Foreground(Rose)

	Warning = lipgloss.NewStyle().
		Foreground(Sun)

	Info = lipgloss.NewStyle().
		Foreground(Indigo)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Dawn).
		Bold(true)

	// Component styles
	Banner = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Sun).
		Padding(0, 1)

	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Slate).
		Padding(0, 1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Indigo).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)

	Today = lipgloss.NewStyle().
		Underline(true).
		Bold(true)
)

// Icon constants.
const (
	IconZen   = "☀ "
	IconFire  = "🔥"
	IconParty = "🎉"
	IconNote  = "📝"
	IconIdea  = "💡"
	IconWarn  = "⚠️ "
	IconError = "✗ "
	IconOk    = "✓ "
	IconArrow = "→"
	IconDot   = "·"

	// Day marks in the week strip.
	MarkDone = "●"
	MarkMiss = "○"
)

// HeatStyle returns the calendar cell style for a heat level.
func HeatStyle(level progress.Level) lipgloss.Style {
	switch level {
	case progress.LevelEmpty:
		return lipgloss.NewStyle().Foreground(Bright).Background(HeatEmpty)
	case progress.LevelLow:
		return lipgloss.NewStyle().Foreground(Bright).Background(HeatLow)
	case progress.LevelMid:
		return lipgloss.NewStyle().Foreground(Bright).Background(HeatMid)
	case progress.LevelFull:
		return lipgloss.NewStyle().Foreground(Night).Background(HeatFull).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Dim)
	}
}
