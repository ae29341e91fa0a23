// Package progress derives read-only completion views from a habit snapshot.
// Nothing here is cached; every call recomputes from the habits it is given.
package progress

import (
	"time"

	"github.com/rnwolfe/zenith/internal/daykey"
	"github.com/rnwolfe/zenith/internal/habit"
)

// Ratio is the share of habits completed on a single day.
type Ratio struct {
	Completed int
	Total     int
	Percent   float64
}

// TodayRatio counts the habits completed on today. Percent is 0 when there
// are no habits.
func TodayRatio(habits []habit.Habit, today daykey.Day) Ratio {
	r := Ratio{Total: len(habits)}
	for _, h := range habits {
		if h.CompletedOn(today) {
			r.Completed++
		}
	}
	if r.Total > 0 {
		r.Percent = float64(r.Completed) / float64(r.Total) * 100
	}
	return r
}

// MonthRatios returns, for every day of the month, the percentage of habits
// completed that day. With no habits the map is empty: a day without tracked
// habits has no data, which is different from 0%.
func MonthRatios(habits []habit.Habit, year int, month time.Month) map[daykey.Day]float64 {
	out := make(map[daykey.Day]float64)
	if len(habits) == 0 {
		return out
	}

	done := make(map[daykey.Day]int)
	for _, h := range habits {
		for _, d := range h.CompletedDates {
			done[d]++
		}
	}

	total := float64(len(habits))
	for _, d := range daykey.Month(year, month) {
		out[d] = float64(done[d]) / total * 100
	}
	return out
}

// DayMark is one cell of a habit's recent-history strip.
type DayMark struct {
	Day       daykey.Day
	Completed bool
	Today     bool
}

// WeekHistory returns the last seven days for h, oldest first, ending today.
func WeekHistory(h habit.Habit, today daykey.Day) []DayMark {
	marks := make([]DayMark, 0, 7)
	for i := 6; i >= 0; i-- {
		d := daykey.Add(today, -i)
		marks = append(marks, DayMark{
			Day:       d,
			Completed: h.CompletedOn(d),
			Today:     d == today,
		})
	}
	return marks
}

// Level buckets a day's completion percent for heat-map rendering.
type Level int

const (
	LevelNone  Level = iota // no data
	LevelEmpty              // 0%
	LevelLow                // (0, 50)
	LevelMid                // [50, 100)
	LevelFull               // 100%
)

// Shade maps a day's percent to a heat level. ok is false when the day has
// no data.
func Shade(percent float64, ok bool) Level {
	switch {
	case !ok:
		return LevelNone
	case percent >= 100:
		return LevelFull
	case percent >= 50:
		return LevelMid
	case percent > 0:
		return LevelLow
	default:
		return LevelEmpty
	}
}
