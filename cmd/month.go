package cmd

import (
	"fmt"
	"time"

	"github.com/rnwolfe/zenith/internal/tui"
	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Show a month's completion heat-map",
	Long: `Show a calendar where each day is shaded by the share of habits completed.

Defaults to the current month. Set display.week_start to start weeks on Monday.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonth,
}

func runMonth(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	today := a.tr.Today()
	t, err := today.Time()
	if err != nil {
		return err
	}
	year, month := t.Year(), t.Month()
	if len(args) == 1 {
		if year, month, err = parseMonth(args[0]); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Print(indentLines(tui.MonthCalendar(a.tr.Snapshot().Habits(), year, month, today, a.cfg.Display.MondayFirst())))
	fmt.Println()
	return nil
}

func parseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}
