package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/zenith/internal/habit"
	"github.com/rnwolfe/zenith/internal/progress"
	"github.com/rnwolfe/zenith/internal/tracker"
	"github.com/rnwolfe/zenith/internal/ui"
)

// BoardModel is the interactive habit board. Every action is applied to the
// tracker immediately, so the board always shows persisted state.
type BoardModel struct {
	tr          *tracker.Tracker
	habits      []habit.Habit
	cursor      int
	mode        boardMode
	mondayFirst bool

	// add mode
	input   []rune
	iconIdx int

	// month mode
	year  int
	month time.Month

	status    string
	celebrate bool

	width  int
	height int
}

type boardMode int

const (
	boardModeList boardMode = iota
	boardModeAdd
	boardModeMonth
)

// NewBoardModel creates a board over tr.
func NewBoardModel(tr *tracker.Tracker, mondayFirst bool) *BoardModel {
	m := &BoardModel{
		tr:          tr,
		mondayFirst: mondayFirst,
		width:       80,
		height:      24,
	}
	m.refresh()
	return m
}

// RunBoard launches the board in the alternate screen.
func RunBoard(tr *tracker.Tracker, mondayFirst bool) error {
	if _, err := tea.NewProgram(NewBoardModel(tr, mondayFirst), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}

func (m *BoardModel) refresh() {
	m.habits = m.tr.Snapshot().Habits()
	if m.cursor >= len(m.habits) {
		m.cursor = max(len(m.habits)-1, 0)
	}
}

func (m *BoardModel) Init() tea.Cmd {
	return nil
}

func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.celebrate {
			m.celebrate = false
			return m, nil
		}
		switch m.mode {
		case boardModeAdd:
			return m.handleAddKey(msg)
		case boardModeMonth:
			return m.handleMonthKey(msg)
		default:
			return m.handleListKey(msg)
		}
	}
	return m, nil
}

func (m *BoardModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "g":
		m.cursor = 0

	case "G":
		m.cursor = max(len(m.habits)-1, 0)

	case " ", "x", "enter":
		if len(m.habits) == 0 {
			return m, nil
		}
		out := m.tr.ToggleToday(m.habits[m.cursor].ID)
		m.refresh()
		m.celebrate = out.Celebrate
		if out.Found && out.JustCompleted {
			m.status = fmt.Sprintf("%s done", out.Habit.Name)
		}

	case "a":
		m.mode = boardModeAdd
		m.input = nil
		m.iconIdx = len(habit.Icons) - 1 // Default

	case "m":
		m.mode = boardModeMonth
		today, _ := m.tr.Today().Time()
		m.year, m.month = today.Year(), today.Month()
	}
	return m, nil
}

func (m *BoardModel) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = boardModeList
		m.input = nil
		m.status = ""

	case tea.KeyEnter:
		h, err := m.tr.AddHabit(string(m.input), habit.Icons[m.iconIdx])
		if errors.Is(err, habit.ErrEmptyName) {
			m.status = "Habit name cannot be empty."
			return m, nil
		}
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.refresh()
		m.cursor = len(m.habits) - 1
		m.mode = boardModeList
		m.input = nil
		m.status = fmt.Sprintf("Added %s %s", h.Icon.Glyph(), h.Name)

	case tea.KeyTab:
		m.iconIdx = (m.iconIdx + 1) % len(habit.Icons)

	case tea.KeyShiftTab:
		m.iconIdx = (m.iconIdx + len(habit.Icons) - 1) % len(habit.Icons)

	case tea.KeyBackspace:
		if n := len(m.input); n > 0 {
			m.input = m.input[:n-1]
		}

	case tea.KeyRunes, tea.KeySpace:
		if len(msg.Runes) == 0 {
			m.input = append(m.input, ' ')
		}
		m.input = append(m.input, msg.Runes...)
	}
	return m, nil
}

func (m *BoardModel) handleMonthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "m", "esc":
		m.mode = boardModeList
	case "h", "left":
		m.shiftMonth(-1)
	case "l", "right":
		m.shiftMonth(1)
	case "t":
		today, _ := m.tr.Today().Time()
		m.year, m.month = today.Year(), today.Month()
	}
	return m, nil
}

func (m *BoardModel) shiftMonth(n int) {
	t := time.Date(m.year, m.month+time.Month(n), 1, 0, 0, 0, 0, time.Local)
	m.year, m.month = t.Year(), t.Month()
}

func (m *BoardModel) View() string {
	var b strings.Builder
	today := m.tr.Today()

	b.WriteString("  " + ui.Title.Render(ui.IconZen+"zenith") + ui.Muted.Render("  "+today.String()) + "\n\n")

	if m.mode == boardModeMonth {
		for _, line := range strings.Split(strings.TrimRight(MonthCalendar(m.habits, m.year, m.month, today, m.mondayFirst), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n" + ui.Muted.Render("  h/l month · t this month · m back · q quit") + "\n")
		return b.String()
	}

	b.WriteString("  " + ProgressLine(progress.TodayRatio(m.habits, today)) + "\n\n")

	if len(m.habits) == 0 {
		b.WriteString("  " + ui.Muted.Render("No habits yet. Press 'a' to add one.") + "\n")
	}
	width := NameWidth(m.habits)
	for i, h := range m.habits {
		pointer := "  "
		if i == m.cursor {
			pointer = ui.Accent.Render(ui.IconArrow + " ")
		}
		b.WriteString("  " + pointer + HabitLine(h, today, width) + "\n")
	}

	if m.celebrate {
		b.WriteString("\n" + indent(CelebrationBanner()) + "\n")
	} else if panel := MilestonePanel(m.habits); panel != "" {
		b.WriteString("\n" + indent(panel) + "\n")
	}

	b.WriteString("\n")
	if m.mode == boardModeAdd {
		icon := habit.Icons[m.iconIdx]
		prompt := lipgloss.NewStyle().Foreground(ui.Teal).Bold(true).Render("add:")
		b.WriteString(fmt.Sprintf("  %s %s %s%s  %s\n", prompt, icon.Glyph(), string(m.input), caret(),
			ui.Muted.Render("tab icon ("+string(icon)+") · enter save · esc cancel")))
	}
	if m.status != "" {
		b.WriteString("  " + ui.Info.Render(m.status) + "\n")
	}
	b.WriteString(ui.Muted.Render("  j/k move · space toggle · a add · m month · q quit") + "\n")
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
