package cmd

import (
	"errors"
	"fmt"

	"github.com/rnwolfe/zenith/internal/habit"
	"github.com/rnwolfe/zenith/internal/milestone"
	"github.com/rnwolfe/zenith/internal/tracker"
	"github.com/rnwolfe/zenith/internal/tui"
	"github.com/rnwolfe/zenith/internal/ui"
	"github.com/spf13/cobra"
)

var doneDay dayFlag

var doneCmd = &cobra.Command{
	Use:     "done [habit]",
	Aliases: []string{"toggle"},
	Short:   "Mark a habit done (or undo it)",
	Long: `Toggle a habit's completion for today, or another day with --day.

Running it again on the same day undoes the check. Without an argument an
interactive picker is shown.`,
	Example: `  zenith done read
  zenith done read --day yesterday
  zenith toggle 3f2a --day 2024-05-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDone,
}

func init() {
	doneCmd.Flags().Var(&doneDay, "day", "Day to toggle: YYYY-MM-DD, today or yesterday")
}

// habitItem adapts a habit for the picker.
type habitItem struct{ h habit.Habit }

func (i habitItem) FilterValue() string { return i.h.Name }
func (i habitItem) Title() string       { return i.h.Icon.Glyph() + " " + i.h.Name }
func (i habitItem) Description() string {
	if i.h.Streak > 0 {
		return fmt.Sprintf("%s %d", ui.IconFire, i.h.Streak)
	}
	return ""
}

func runDone(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := pickHabit(a.tr, args)
	if err != nil || h.ID == "" {
		return err
	}

	day := doneDay.Resolve(a.tr.Today())
	out := a.tr.Toggle(h.ID, day)
	printToggle(out, day == a.tr.Today(), day.String())
	return nil
}

func pickHabit(tr *tracker.Tracker, args []string) (habit.Habit, error) {
	snap := tr.Snapshot()
	if len(args) == 1 {
		h, ok := snap.Resolve(args[0])
		if !ok {
			return habit.Habit{}, fmt.Errorf("no habit matching %q (see `zenith list`)", args[0])
		}
		return h, nil
	}

	if snap.Len() == 0 {
		return habit.Habit{}, errors.New("no habits yet; add one with `zenith add <name>`")
	}
	if !tui.IsTTY() {
		return habit.Habit{}, errors.New("which habit? pass a name or ID")
	}

	items := make([]tui.Item, 0, snap.Len())
	for _, h := range snap.Habits() {
		items = append(items, habitItem{h})
	}
	chosen, err := tui.Run(items, tui.WithTitle("Toggle which habit?"))
	if err != nil || chosen == nil {
		return habit.Habit{}, err
	}
	return chosen.(habitItem).h, nil
}

func printToggle(out tracker.Outcome, isToday bool, day string) {
	when := "today"
	if !isToday {
		when = day
	}
	h := out.Habit

	if !out.JustCompleted {
		fmt.Printf("  %s %s %s unmarked for %s\n", ui.Muted.Render("○"), h.Icon.Glyph(), h.Name, when)
		printStreak(h.Streak)
		return
	}

	fmt.Printf("  %s %s %s done for %s\n", ui.Success.Render("✓"), h.Icon.Glyph(), ui.Accent.Render(h.Name), when)
	printStreak(h.Streak)

	if tier := milestone.Classify(h.Streak); reachedTier(h.Streak) {
		fmt.Println()
		fmt.Println("  " + ui.Title.Render(tier.Title()))
		fmt.Println("  " + ui.Muted.Render(tier.Message()))
	}
	if out.Celebrate {
		fmt.Println()
		fmt.Println(tui.CelebrationBanner())
	}
}

func printStreak(n int) {
	if n > 0 {
		fmt.Printf("    %s %s\n", ui.IconFire, ui.Warning.Render(fmt.Sprintf("%d day streak", n)))
	}
}

// reachedTier is true on the exact day a streak crosses into a new tier.
func reachedTier(streak int) bool {
	switch streak {
	case milestone.FormingAt, milestone.AutomaticAt, milestone.MasteredAt:
		return true
	}
	return false
}
