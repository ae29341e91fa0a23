// Package milestone maps streak lengths to encouragement tiers and decides
// when finishing the day's habits deserves a celebration.
package milestone

import (
	"github.com/rnwolfe/zenith/internal/daykey"
	"github.com/rnwolfe/zenith/internal/habit"
)

// Tier is a named range of streak lengths.
type Tier int

const (
	TierNone      Tier = iota // 0
	TierMomentum              // [1, 7)
	TierForming               // [7, 21)
	TierAutomatic             // [21, 66)
	TierMastered              // [66, ∞)
)

// Lower bounds of each tier.
const (
	FormingAt   = 7
	AutomaticAt = 21
	MasteredAt  = 66
)

// CelebrationMessage is shown when every habit is done for the day.
const CelebrationMessage = "You've completed all your habits for today!"

// Classify returns the tier for the longest active streak.
func Classify(maxStreak int) Tier {
	switch {
	case maxStreak <= 0:
		return TierNone
	case maxStreak < FormingAt:
		return TierMomentum
	case maxStreak < AutomaticAt:
		return TierForming
	case maxStreak < MasteredAt:
		return TierAutomatic
	default:
		return TierMastered
	}
}

func (t Tier) String() string {
	switch t {
	case TierMomentum:
		return "building momentum"
	case TierForming:
		return "habit forming"
	case TierAutomatic:
		return "becoming automatic"
	case TierMastered:
		return "habit mastered"
	default:
		return "none"
	}
}

// Title is the panel heading for t.
func (t Tier) Title() string {
	switch t {
	case TierMomentum:
		return "Your Next Goal"
	case TierForming:
		return "You're Building a Habit!"
	case TierAutomatic:
		return "It's Becoming Automatic!"
	case TierMastered:
		return "Habit Master!"
	default:
		return ""
	}
}

// Message is the encouragement text for t.
func (t Tier) Message() string {
	switch t {
	case TierMomentum:
		return "Consistency is key. Aim for a full 7-day streak to build real momentum!"
	case TierForming:
		return "Great job hitting a 7-day streak! Psychologists say it can take around 21 days for a habit to stick. You're on your way!"
	case TierAutomatic:
		return "You've passed the 21-day milestone! Research suggests it takes an average of 66 days for a behavior to become second nature. Let's go for it!"
	case TierMastered:
		return "Incredible! This is now a solid part of your routine. Consider adding a new challenge to keep growing!"
	default:
		return ""
	}
}

// MaxStreak returns the largest cached streak across habits, or 0.
func MaxStreak(habits []habit.Habit) int {
	m := 0
	for _, h := range habits {
		m = max(m, h.Streak)
	}
	return m
}

// ShouldCelebrate reports whether a toggle that produced habits (the new
// snapshot) completed the day: it must have been a fresh completion, and
// every habit must now be done today.
func ShouldCelebrate(habits []habit.Habit, today daykey.Day, justCompleted bool) bool {
	if !justCompleted || len(habits) == 0 {
		return false
	}
	for _, h := range habits {
		if !h.CompletedOn(today) {
			return false
		}
	}
	return true
}
