package progress

import (
	"math"
	"testing"
	"time"

	"github.com/rnwolfe/zenith/internal/daykey"
	"github.com/rnwolfe/zenith/internal/habit"
)

func h(id string, dates ...daykey.Day) habit.Habit {
	return habit.Habit{ID: id, Name: id, CompletedDates: dates}
}

func TestTodayRatio_NoHabits(t *testing.T) {
	r := TodayRatio(nil, "2024-01-01")
	if r != (Ratio{}) {
		t.Fatalf("expected zero ratio, got %+v", r)
	}
	if math.IsNaN(r.Percent) {
		t.Fatal("percent must not be NaN")
	}
}

func TestTodayRatio(t *testing.T) {
	habits := []habit.Habit{
		h("a", "2024-01-01"),
		h("b"),
		h("c", "2024-01-01", "2023-12-31"),
	}
	r := TodayRatio(habits, "2024-01-01")
	if r.Completed != 2 || r.Total != 3 {
		t.Fatalf("got %d/%d, want 2/3", r.Completed, r.Total)
	}
	if math.Abs(r.Percent-66.666) > 0.01 {
		t.Errorf("percent = %f, want ~66.67", r.Percent)
	}
}

func TestMonthRatios_NoHabits(t *testing.T) {
	m := MonthRatios(nil, 2024, time.February)
	if m == nil {
		t.Fatal("expected an empty map, got nil")
	}
	if len(m) != 0 {
		t.Fatalf("expected no entries, got %d", len(m))
	}
	if _, ok := m["2024-02-01"]; ok {
		t.Error("day without habits must be absent, not 0")
	}
}

func TestMonthRatios(t *testing.T) {
	habits := []habit.Habit{
		h("a", "2024-02-01", "2024-02-29", "2024-03-01"),
		h("b", "2024-02-01"),
	}
	m := MonthRatios(habits, 2024, time.February)
	if len(m) != 29 {
		t.Fatalf("expected 29 days, got %d", len(m))
	}
	checks := map[daykey.Day]float64{
		"2024-02-01": 100,
		"2024-02-29": 50,
		"2024-02-15": 0,
	}
	for d, want := range checks {
		got, ok := m[d]
		if !ok || got != want {
			t.Errorf("m[%s] = %v (present %v), want %v", d, got, ok, want)
		}
	}
	if _, ok := m["2024-03-01"]; ok {
		t.Error("days outside the month must not appear")
	}
}

func TestWeekHistory(t *testing.T) {
	marks := WeekHistory(h("a", "2024-01-01", "2024-01-03"), "2024-01-03")
	if len(marks) != 7 {
		t.Fatalf("expected 7 marks, got %d", len(marks))
	}
	if marks[0].Day != "2023-12-28" || marks[6].Day != "2024-01-03" {
		t.Errorf("unexpected range %s..%s", marks[0].Day, marks[6].Day)
	}
	if !marks[6].Today || !marks[6].Completed {
		t.Errorf("last mark should be today and completed: %+v", marks[6])
	}
	if marks[5].Completed {
		t.Errorf("2024-01-02 should be incomplete")
	}
	if !marks[4].Completed {
		t.Errorf("2024-01-01 should be completed")
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		pct  float64
		ok   bool
		want Level
	}{
		{0, false, LevelNone},
		{0, true, LevelEmpty},
		{10, true, LevelLow},
		{50, true, LevelMid},
		{99.9, true, LevelMid},
		{100, true, LevelFull},
	}
	for _, tt := range tests {
		if got := Shade(tt.pct, tt.ok); got != tt.want {
			t.Errorf("Shade(%v, %v) = %v, want %v", tt.pct, tt.ok, got, tt.want)
		}
	}
}
