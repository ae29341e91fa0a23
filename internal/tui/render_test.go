package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/rnwolfe/zenith/internal/daykey"
	"github.com/rnwolfe/zenith/internal/habit"
	"github.com/rnwolfe/zenith/internal/milestone"
	"github.com/rnwolfe/zenith/internal/progress"
)

func TestWeekStrip(t *testing.T) {
	h := habit.Habit{CompletedDates: []daykey.Day{"2024-03-09", "2024-03-14", "2024-03-15"}}
	got := WeekStrip(h, "2024-03-15")
	if strings.Count(got, "●") != 3 || strings.Count(got, "○") != 4 {
		t.Fatalf("WeekStrip = %q", got)
	}
	if strings.Index(got, "●") > strings.Index(got, "○") {
		t.Fatalf("oldest day (a completion) should come first: %q", got)
	}
}

func TestHabitLine(t *testing.T) {
	h := habit.Habit{Name: "Read", Icon: "Unknown", Streak: 4, CompletedDates: []daykey.Day{"2024-03-15"}}
	line := HabitLine(h, "2024-03-15", 10)
	for _, want := range []string{"[✓]", "Read", habit.IconDefault.Glyph(), "4"} {
		if !strings.Contains(line, want) {
			t.Errorf("HabitLine missing %q: %q", want, line)
		}
	}
	if line := HabitLine(habit.Habit{Name: "Walk"}, "2024-03-15", 10); !strings.Contains(line, "[ ]") {
		t.Errorf("incomplete habit should show an empty box: %q", line)
	}
}

func TestNameWidth(t *testing.T) {
	if w := NameWidth(nil); w != 8 {
		t.Errorf("NameWidth(nil) = %d", w)
	}
	if w := NameWidth([]habit.Habit{{Name: strings.Repeat("x", 50)}}); w != 32 {
		t.Errorf("NameWidth should cap at 32, got %d", w)
	}
}

func TestProgressLine(t *testing.T) {
	got := ProgressLine(progress.Ratio{Completed: 1, Total: 4, Percent: 25})
	if !strings.Contains(got, "1/4") || !strings.Contains(got, "25%") {
		t.Errorf("ProgressLine = %q", got)
	}
}

func TestMilestonePanel(t *testing.T) {
	if got := MilestonePanel([]habit.Habit{{Streak: 0}}); got != "" {
		t.Errorf("no streak should render no panel, got %q", got)
	}
	got := MilestonePanel([]habit.Habit{{Streak: 3}, {Streak: 22}})
	if !strings.Contains(got, milestone.TierAutomatic.Title()) || !strings.Contains(got, "22 days") {
		t.Errorf("MilestonePanel = %q", got)
	}
}

func TestMonthCalendar(t *testing.T) {
	habits := []habit.Habit{{Name: "A", CompletedDates: []daykey.Day{"2024-02-29"}}}

	sunday := MonthCalendar(habits, 2024, time.February, "2024-02-10", false)
	if !strings.Contains(sunday, "February 2024") || !strings.Contains(sunday, "29") {
		t.Fatalf("calendar missing title or leap day:\n%s", sunday)
	}
	if !strings.Contains(sunday, "Su Mo Tu") {
		t.Errorf("sunday-first header wrong:\n%s", sunday)
	}
	// 1 Feb 2024 was a Thursday: four blank cells before it.
	lines := strings.Split(sunday, "\n")
	if !strings.HasPrefix(lines[2], strings.Repeat("   ", 4)) {
		t.Errorf("first week should be offset by four cells: %q", lines[2])
	}

	monday := MonthCalendar(habits, 2024, time.February, "2024-02-10", true)
	if !strings.Contains(monday, "Mo Tu We Th Fr Sa Su") {
		t.Errorf("monday-first header wrong:\n%s", monday)
	}
	if !strings.HasPrefix(strings.Split(monday, "\n")[2], strings.Repeat("   ", 3)) {
		t.Error("monday-first should offset by three cells")
	}
}

func TestMonthCalendar_NoHabits(t *testing.T) {
	got := MonthCalendar(nil, 2024, time.March, "2024-03-01", false)
	if !strings.Contains(got, "no habits tracked yet") {
		t.Errorf("empty calendar should say there is no data:\n%s", got)
	}
}
