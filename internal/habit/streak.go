package habit

import (
	"slices"

	"github.com/rnwolfe/zenith/internal/daykey"
)

// ComputeStreak returns the number of consecutive completed days ending on
// today or the day before it.
//
// A habit not completed today or yesterday has no active streak, regardless
// of older history. Duplicate days are counted once.
func ComputeStreak(dates []daykey.Day, today daykey.Day) int {
	if len(dates) == 0 {
		return 0
	}

	desc := uniqueDesc(dates)
	mostRecent := desc[0]
	if mostRecent != today && mostRecent != daykey.Before(today) {
		return 0
	}

	streak := 0
	expected := mostRecent
	for _, d := range desc {
		if d != expected {
			break
		}
		streak++
		expected = daykey.Before(expected)
	}
	return streak
}

// LongestStreak returns the longest run of consecutive days anywhere in dates.
func LongestStreak(dates []daykey.Day) int {
	if len(dates) == 0 {
		return 0
	}

	desc := uniqueDesc(dates)
	longest, run := 1, 1
	for i := 1; i < len(desc); i++ {
		if desc[i] == daykey.Before(desc[i-1]) {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	return longest
}

// uniqueDesc returns a sorted (most recent first), de-duplicated copy of dates.
func uniqueDesc(dates []daykey.Day) []daykey.Day {
	out := slices.Clone(dates)
	slices.Sort(out)
	out = slices.Compact(out)
	slices.Reverse(out)
	return out
}
