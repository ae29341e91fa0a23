// Package habit models habits and their completion sets.
//
// A Collection is an immutable snapshot of every habit in display order.
// Transitions (Add, Toggle) return a new Collection and leave the receiver
// untouched, so earlier snapshots stay valid for anyone still reading them.
package habit

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rnwolfe/zenith/internal/daykey"
)

// ErrEmptyName is returned when a habit is added without a name.
var ErrEmptyName = errors.New("habit name cannot be empty")

// Habit is a tracked habit. Streak is a cached value recomputed on every
// change to CompletedDates and must not be edited directly.
type Habit struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Icon           Icon         `json:"icon"`
	Streak         int          `json:"streak"`
	CompletedDates []daykey.Day `json:"completedDates"`
}

// CompletedOn reports whether the habit was completed on day.
func (h Habit) CompletedOn(day daykey.Day) bool {
	return slices.Contains(h.CompletedDates, day)
}

// Collection is an ordered snapshot of habits.
type Collection struct {
	habits []Habit
}

// NewCollection builds a snapshot from habits, dropping duplicate completion
// days. The input slice is not retained.
func NewCollection(habits []Habit) Collection {
	out := make([]Habit, len(habits))
	for i, h := range habits {
		h.CompletedDates = dedupe(h.CompletedDates)
		out[i] = h
	}
	return Collection{habits: out}
}

// Habits returns a copy of the habits in display order.
func (c Collection) Habits() []Habit {
	out := make([]Habit, len(c.habits))
	for i, h := range c.habits {
		h.CompletedDates = slices.Clone(h.CompletedDates)
		out[i] = h
	}
	return out
}

// Len returns the number of habits.
func (c Collection) Len() int {
	return len(c.habits)
}

// Find returns the habit with the given ID.
func (c Collection) Find(id string) (Habit, bool) {
	for _, h := range c.habits {
		if h.ID == id {
			h.CompletedDates = slices.Clone(h.CompletedDates)
			return h, true
		}
	}
	return Habit{}, false
}

// NewID returns a fresh habit identifier.
func NewID() string {
	return uuid.NewString()
}

// Add appends a new habit with an empty completion set. newID may be nil, in
// which case NewID is used.
func (c Collection) Add(name string, icon Icon, newID func() string) (Collection, Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c, Habit{}, ErrEmptyName
	}
	if newID == nil {
		newID = NewID
	}

	h := Habit{
		ID:             newID(),
		Name:           name,
		Icon:           icon,
		CompletedDates: []daykey.Day{},
	}

	next := make([]Habit, len(c.habits), len(c.habits)+1)
	copy(next, c.habits)
	next = append(next, h)
	return Collection{habits: next}, h, nil
}

// Toggle flips the completion state of habit id on day and recomputes its
// streak anchored on today. today must be the caller's wall-clock day, not
// the day being edited. An unknown id returns c unchanged.
func (c Collection) Toggle(id string, day, today daykey.Day) Collection {
	idx := slices.IndexFunc(c.habits, func(h Habit) bool { return h.ID == id })
	if idx < 0 {
		return c
	}

	next := make([]Habit, len(c.habits))
	copy(next, c.habits)

	h := next[idx]
	var dates []daykey.Day
	if h.CompletedOn(day) {
		dates = slices.DeleteFunc(slices.Clone(h.CompletedDates), func(d daykey.Day) bool { return d == day })
	} else {
		dates = append(slices.Clone(h.CompletedDates), day)
	}
	h.CompletedDates = dates
	h.Streak = ComputeStreak(dates, today)
	next[idx] = h

	return Collection{habits: next}
}

// JustCompleted reports whether moving from before to after marked habit id
// complete on day, as opposed to undoing a completion.
func JustCompleted(before, after Collection, id string, day daykey.Day) bool {
	prev, ok := before.Find(id)
	if !ok {
		return false
	}
	cur, ok := after.Find(id)
	if !ok {
		return false
	}
	return !prev.CompletedOn(day) && cur.CompletedOn(day)
}

// Resolve finds a habit by exact ID, unique ID prefix, or case-insensitive
// name.
func (c Collection) Resolve(ref string) (Habit, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Habit{}, false
	}
	if h, ok := c.Find(ref); ok {
		return h, true
	}

	var match []Habit
	for _, h := range c.habits {
		if strings.EqualFold(h.Name, ref) {
			return h, true
		}
		if strings.HasPrefix(h.ID, ref) {
			match = append(match, h)
		}
	}
	if len(match) == 1 {
		return match[0], true
	}
	return Habit{}, false
}

func dedupe(dates []daykey.Day) []daykey.Day {
	if dates == nil {
		return []daykey.Day{}
	}
	seen := make(map[daykey.Day]struct{}, len(dates))
	out := make([]daykey.Day, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
