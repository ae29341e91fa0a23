package cmd

import (
	"errors"

	"github.com/rnwolfe/zenith/internal/tui"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive habit board",
	Long: `Open a full-screen board to check off habits, add new ones and browse
the month heat-map. Changes are saved as you make them.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	if !tui.IsTTY() {
		return errors.New("the board needs an interactive terminal; try `zenith list`")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.RunBoard(a.tr, a.cfg.Display.MondayFirst())
}
