// Package tracker owns zenith's application state: the habit collection and
// the free-text notes. It loads both once from a key-value store, applies
// user actions as pure transitions on the habit snapshot, and rewrites the
// affected key in full after every mutation.
//
// Persistence is best-effort. A value that is missing or cannot be decoded
// falls back to an empty default, and a failed write is logged and ignored.
// None of these failures reach the caller.
package tracker

import (
	"encoding/json"
	"time"

	"github.com/rnwolfe/zenith/internal/daykey"
	"github.com/rnwolfe/zenith/internal/habit"
	"github.com/rnwolfe/zenith/internal/milestone"
	"go.uber.org/zap"
)

// Storage keys.
const (
	KeyHabits = "habits"
	KeyNotes  = "notes"
)

// KV is the flat key-value storage the tracker persists to.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Tracker is the single owner of application state. It is not safe for
// concurrent use; zenith has exactly one writer, the current user action.
type Tracker struct {
	kv    KV
	log   *zap.Logger
	clock func() time.Time
	newID func() string

	habits habit.Collection
	notes  string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the source of "now" used to derive today.
func WithClock(clock func() time.Time) Option {
	return func(t *Tracker) { t.clock = clock }
}

// WithIDs sets the habit ID generator.
func WithIDs(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

// Open loads state from kv. It never fails; unreadable values are replaced
// by defaults and logged.
func Open(kv KV, log *zap.Logger, opts ...Option) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Tracker{
		kv:    kv,
		log:   log,
		clock: time.Now,
		newID: habit.NewID,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.load()
	return t
}

func (t *Tracker) load() {
	t.habits = habit.NewCollection(nil)

	if raw, ok := t.read(KeyHabits); ok {
		var hs []habit.Habit
		if err := json.Unmarshal([]byte(raw), &hs); err != nil {
			t.log.Warn("discarding unreadable habits", zap.Error(err))
		} else {
			t.habits = habit.NewCollection(hs)
		}
	}

	if raw, ok := t.read(KeyNotes); ok {
		t.notes = raw
	}

	t.log.Debug("state loaded",
		zap.Int("habits", t.habits.Len()),
		zap.Int("notes_bytes", len(t.notes)),
	)
}

func (t *Tracker) read(key string) (string, bool) {
	raw, ok, err := t.kv.Get(key)
	if err != nil {
		t.log.Warn("loading state failed, using defaults", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return raw, ok
}

// Today is the wall-clock calendar day.
func (t *Tracker) Today() daykey.Day {
	return daykey.Today(t.clock)
}

// Snapshot returns the current habit collection.
func (t *Tracker) Snapshot() habit.Collection {
	return t.habits
}

// Notes returns the notes text.
func (t *Tracker) Notes() string {
	return t.notes
}

// AddHabit creates a habit and persists the collection. An empty name is
// rejected with habit.ErrEmptyName and nothing is written.
func (t *Tracker) AddHabit(name string, icon habit.Icon) (habit.Habit, error) {
	next, h, err := t.habits.Add(name, icon, t.newID)
	if err != nil {
		return habit.Habit{}, err
	}
	t.habits = next
	t.log.Debug("habit added", zap.String("id", h.ID), zap.String("name", h.Name))
	t.saveHabits()
	return h, nil
}

// Outcome describes the result of a toggle.
type Outcome struct {
	Before habit.Collection
	After  habit.Collection
	Habit  habit.Habit
	// Found is false when the id matched no habit; nothing changed.
	Found bool
	// JustCompleted is true for a fresh completion, false for an undo.
	JustCompleted bool
	// Celebrate is true when this completion finished every habit today.
	Celebrate bool
}

// Toggle flips habit id's completion on day. The streak is always anchored
// on the real today, even when day is in the past.
func (t *Tracker) Toggle(id string, day daykey.Day) Outcome {
	today := t.Today()
	before := t.habits
	if _, ok := before.Find(id); !ok {
		t.log.Debug("toggle on unknown habit ignored", zap.String("id", id))
		return Outcome{Before: before, After: before}
	}

	after := before.Toggle(id, day, today)
	t.habits = after
	t.saveHabits()

	h, _ := after.Find(id)
	just := habit.JustCompleted(before, after, id, day)
	out := Outcome{
		Before:        before,
		After:         after,
		Habit:         h,
		Found:         true,
		JustCompleted: just,
		Celebrate:     milestone.ShouldCelebrate(after.Habits(), today, just),
	}
	t.log.Debug("habit toggled",
		zap.String("id", id),
		zap.String("day", day.String()),
		zap.Bool("completed", just),
		zap.Int("streak", h.Streak),
	)
	return out
}

// ToggleToday toggles habit id for today.
func (t *Tracker) ToggleToday(id string) Outcome {
	return t.Toggle(id, t.Today())
}

// SetNotes replaces the notes text and persists it.
func (t *Tracker) SetNotes(text string) {
	t.notes = text
	if err := t.kv.Set(KeyNotes, text); err != nil {
		t.log.Warn("saving notes failed", zap.Error(err))
	}
}

func (t *Tracker) saveHabits() {
	data, err := json.Marshal(t.habits.Habits())
	if err != nil {
		t.log.Warn("encoding habits failed", zap.Error(err))
		return
	}
	if err := t.kv.Set(KeyHabits, string(data)); err != nil {
		t.log.Warn("saving habits failed", zap.Error(err))
	}
}
