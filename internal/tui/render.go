package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/zenith/internal/daykey"
	"github.com/rnwolfe/zenith/internal/habit"
	"github.com/rnwolfe/zenith/internal/milestone"
	"github.com/rnwolfe/zenith/internal/progress"
	"github.com/rnwolfe/zenith/internal/ui"
)

// WeekStrip renders the last seven days of h as filled and hollow dots,
// oldest first, with today underlined.
func WeekStrip(h habit.Habit, today daykey.Day) string {
	cells := make([]string, 0, 7)
	for _, m := range progress.WeekHistory(h, today) {
		cell := ui.Muted.Render(ui.MarkMiss)
		if m.Completed {
			cell = ui.Success.Render(ui.MarkDone)
		}
		if m.Today {
			cell = ui.Today.Render(cell)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}

// HabitLine renders one habit row: check, icon, name, week strip and streak.
func HabitLine(h habit.Habit, today daykey.Day, nameWidth int) string {
	check := ui.Muted.Render("[ ]")
	name := h.Name
	if h.CompletedOn(today) {
		check = ui.Success.Render("[✓]")
		name = ui.Muted.Render(name)
	}
	name = lipgloss.NewStyle().Width(nameWidth).MaxWidth(nameWidth).Render(name)

	streak := ui.Muted.Render("  -")
	if h.Streak > 0 {
		streak = ui.Warning.Render(fmt.Sprintf("%s %d", ui.IconFire, h.Streak))
	}
	return fmt.Sprintf("%s %s %s  %s  %s", check, h.Icon.Glyph(), name, WeekStrip(h, today), streak)
}

// NameWidth is the display width of the longest habit name, capped.
func NameWidth(habits []habit.Habit) int {
	w := 8
	for _, h := range habits {
		w = max(w, lipgloss.Width(h.Name))
	}
	return min(w, 32)
}

// ProgressLine renders "n/total done" with a bar and percentage.
func ProgressLine(r progress.Ratio) string {
	return fmt.Sprintf("%s %s %s",
		ui.Bar(r.Percent, 20),
		ui.Accent.Render(fmt.Sprintf("%d/%d", r.Completed, r.Total)),
		ui.Muted.Render(fmt.Sprintf("done today (%.0f%%)", r.Percent)),
	)
}

// MilestonePanel renders the encouragement panel for the longest streak.
// It is empty when no habit has a streak.
func MilestonePanel(habits []habit.Habit) string {
	best := milestone.MaxStreak(habits)
	tier := milestone.Classify(best)
	if tier == milestone.TierNone {
		return ""
	}
	body := ui.Title.Render(tier.Title()) + "\n" +
		ui.Muted.Render(fmt.Sprintf("Longest active streak: %d days", best)) + "\n" +
		lipgloss.NewStyle().Width(60).Render(tier.Message())
	return ui.Panel.Render(body)
}

// CelebrationBanner is shown when the last habit of the day is completed.
func CelebrationBanner() string {
	return ui.Banner.Render(ui.IconParty + " " + ui.Accent.Render(milestone.CelebrationMessage))
}

// MonthCalendar renders a heat-map calendar of the month.
func MonthCalendar(habits []habit.Habit, year int, month time.Month, today daykey.Day, mondayFirst bool) string {
	ratios := progress.MonthRatios(habits, year, month)
	days := daykey.Month(year, month)

	var b strings.Builder
	b.WriteString(ui.Title.Render(fmt.Sprintf("%s %d", month, year)) + "\n")

	header := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	if mondayFirst {
		header = append(header[1:], header[0])
	}
	b.WriteString(ui.Muted.Render(strings.Join(header, " ")) + "\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
	lead := int(first)
	if mondayFirst {
		lead = (lead + 6) % 7
	}

	row := make([]string, 0, 7)
	for range lead {
		row = append(row, "  ")
	}
	for i, d := range days {
		pct, ok := ratios[d]
		cell := ui.HeatStyle(progress.Shade(pct, ok)).Render(fmt.Sprintf("%2d", i+1))
		if d == today {
			cell = ui.Today.Render(cell)
		}
		row = append(row, cell)
		if len(row) == 7 {
			b.WriteString(strings.Join(row, " ") + "\n")
			row = row[:0]
		}
	}
	if len(row) > 0 {
		b.WriteString(strings.Join(row, " ") + "\n")
	}

	b.WriteString(legend(len(habits) == 0))
	return b.String()
}

func legend(empty bool) string {
	if empty {
		return ui.Muted.Render("no habits tracked yet") + "\n"
	}
	parts := []string{
		ui.HeatStyle(progress.LevelEmpty).Render("  ") + " 0%",
		ui.HeatStyle(progress.LevelLow).Render("  ") + " <50%",
		ui.HeatStyle(progress.LevelMid).Render("  ") + " ≥50%",
		ui.HeatStyle(progress.LevelFull).Render("  ") + " 100%",
	}
	return strings.Join(parts, "  ") + "\n"
}
