package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rnwolfe/zenith/internal/habit"
	"github.com/rnwolfe/zenith/internal/tui"
	"github.com/rnwolfe/zenith/internal/ui"
	"github.com/spf13/cobra"
)

var addIcon string

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Start tracking a new habit",
	Long: `Start tracking a new habit. Words after "add" form the name.

Pick an icon with --icon; see "zenith icons" for the list.`,
	Example: `  zenith add Drink water --icon water
  zenith add "Read one chapter" --icon book`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List the available habit icons",
	Args:  cobra.NoArgs,
	RunE:  runIcons,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits with their streaks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var showCmd = &cobra.Command{
	Use:   "show <habit>",
	Short: "Show details for one habit",
	Long:  `Show details for one habit, found by name or ID prefix.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	addCmd.Flags().StringVarP(&addIcon, "icon", "i", string(habit.IconDefault), "Icon key (see `zenith icons`)")
	addCmd.RegisterFlagCompletionFunc("icon", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) { //nolint:errcheck
		keys := make([]string, len(habit.Icons))
		for i, ic := range habit.Icons {
			keys[i] = strings.ToLower(string(ic))
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	})
}

func runAdd(_ *cobra.Command, args []string) error {
	icon := habit.ParseIcon(addIcon)
	if !strings.EqualFold(string(icon), strings.TrimSpace(addIcon)) {
		ui.Warn(fmt.Sprintf("Unknown icon %q, using %s.", addIcon, icon))
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.tr.AddHabit(strings.Join(args, " "), icon)
	if err != nil {
		return err
	}

	fmt.Printf("  %s Tracking %s %s %s\n",
		ui.Success.Render("✓"), h.Icon.Glyph(), ui.Accent.Render(h.Name), ui.Muted.Render(shortID(h.ID)))
	return nil
}

func runIcons(_ *cobra.Command, _ []string) error {
	fmt.Println()
	for _, ic := range habit.Icons {
		fmt.Printf("  %s  %s\n", ic.Glyph(), ui.KeyStyle.Render(strings.ToLower(string(ic))))
	}
	fmt.Println()
	return nil
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	habits := a.tr.Snapshot().Habits()
	if len(habits) == 0 {
		fmt.Println(ui.Muted.Render("  No habits yet."))
		ui.Tip("`zenith add <name>` to start one.")
		return nil
	}

	today := a.tr.Today()
	width := tui.NameWidth(habits)
	fmt.Println()
	for _, h := range habits {
		fmt.Printf("  %s  %s\n", ui.Muted.Render(shortID(h.ID)), tui.HabitLine(h, today, width))
	}
	fmt.Println()
	return nil
}

func runShow(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	h, ok := a.tr.Snapshot().Resolve(args[0])
	if !ok {
		return fmt.Errorf("no habit matching %q", args[0])
	}
	today := a.tr.Today()

	ui.Header(h.Icon.Glyph() + " " + h.Name)
	ui.Kv("ID", h.ID)
	ui.Kv("Icon", string(h.Icon.Resolve()))
	ui.Kv("Streak", fmt.Sprintf("%d days", h.Streak))
	ui.Kv("Longest", fmt.Sprintf("%d days", habit.LongestStreak(h.CompletedDates)))
	ui.Kv("Completions", fmt.Sprintf("%d", len(h.CompletedDates)))
	if len(h.CompletedDates) > 0 {
		ui.Kv("Last done", string(slices.Max(h.CompletedDates)))
	}
	ui.Kv("This week", tui.WeekStrip(h, today))
	fmt.Println()
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
