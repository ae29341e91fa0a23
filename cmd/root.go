package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rnwolfe/zenith/internal/config"
	"github.com/rnwolfe/zenith/internal/logging"
	"github.com/rnwolfe/zenith/internal/milestone"
	"github.com/rnwolfe/zenith/internal/progress"
	"github.com/rnwolfe/zenith/internal/tips"
	"github.com/rnwolfe/zenith/internal/tui"
	"github.com/rnwolfe/zenith/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagVerbose bool
	flagNoColor bool

	// logger is built once flags are parsed; nil until then.
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zenith",
	Short: "A calm, local-first habit tracker",
	Long: `zenith tracks daily habits, streaks and progress from the terminal.

Run it with no arguments for today's dashboard.`,
	PersistentPreRunE: setup,
	RunE:              runDashboard,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(aiCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup builds the logger and color profile before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	logger = logging.New(flagVerbose)

	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not lock the user out of their habits.
		logger.Warn("loading config failed, using defaults", zap.Error(err))
		ui.ConfigureColor(!flagNoColor)
		return nil
	}
	ui.ConfigureColor(!flagNoColor && cfg.Display.ColorEnabled())
	return nil
}

func appLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// runDashboard shows today's progress when you just type `zenith`.
func runDashboard(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	today := a.tr.Today()
	habits := a.tr.Snapshot().Habits()

	fmt.Println(ui.Greet(a.cfg.User.Name))
	fmt.Println(ui.Muted.Render("  " + today.String()))
	fmt.Println()

	if len(habits) == 0 {
		fmt.Println(ui.Muted.Render("  No habits yet."))
		ui.Tip("`zenith add \"Drink water\" --icon water` to start one, or `zenith suggest` for ideas.")
		fmt.Println()
		return nil
	}

	ratio := progress.TodayRatio(habits, today)
	fmt.Println("  " + tui.ProgressLine(ratio))
	fmt.Println()

	width := tui.NameWidth(habits)
	for _, h := range habits {
		fmt.Println("  " + tui.HabitLine(h, today, width))
	}

	if ratio.Total > 0 && ratio.Completed == ratio.Total {
		fmt.Println()
		fmt.Println(ui.Success.Render("  " + ui.IconParty + " " + milestone.CelebrationMessage))
	}
	if panel := tui.MilestonePanel(habits); panel != "" {
		fmt.Println()
		fmt.Println(panel)
	}

	if ratio.Completed < ratio.Total {
		ui.Tip("`zenith done <habit>` to check one off, or `zenith board` for the interactive view.")
	} else {
		ui.Tip(tips.Daily(time.Now()))
	}
	fmt.Println()
	return nil
}
