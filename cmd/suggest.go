package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rnwolfe/zenith/internal/coach"
	"github.com/rnwolfe/zenith/internal/tui"
	"github.com/rnwolfe/zenith/internal/ui"
	"github.com/spf13/cobra"
)

var suggestAdd bool

// coachTimeout bounds a single provider round trip.
const coachTimeout = 30 * time.Second

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Get habit ideas from the AI coach",
	Long: `Ask the AI coach for five habit ideas.

Without an API key, or when the service is unreachable, a short built-in list
is shown instead. Use --add to pick one and start tracking it.`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVarP(&suggestAdd, "add", "a", false, "Pick a suggestion to add as a habit")
}

// suggestionItem adapts a suggestion for the picker.
type suggestionItem struct{ s coach.Suggestion }

func (i suggestionItem) FilterValue() string { return i.s.Name + " " + i.s.Category }
func (i suggestionItem) Title() string {
	return coach.IconForCategory(i.s.Category).Glyph() + " " + i.s.Name
}
func (i suggestionItem) Description() string { return i.s.Category }

func runSuggest(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(cmdContext(cmd), coachTimeout)
	defer cancel()

	coachStatus(cmd, ui.IsStdoutTTY())
	suggestions := newCoach(a.cfg).Suggestions(ctx)

	if len(suggestions) == 0 {
		fmt.Println(ui.Muted.Render("  The coach had no ideas this time. Try again in a moment."))
		return nil
	}

	if !suggestAdd {
		printSuggestions(suggestions)
		ui.Tip("`zenith suggest --add` to start tracking one.")
		return nil
	}

	if !tui.IsTTY() {
		return errors.New("--add needs an interactive terminal")
	}
	items := make([]tui.Item, len(suggestions))
	for i, s := range suggestions {
		items[i] = suggestionItem{s}
	}
	chosen, err := tui.Run(items, tui.WithTitle("Add which habit?"))
	if err != nil || chosen == nil {
		return err
	}

	s := chosen.(suggestionItem).s
	h, err := a.tr.AddHabit(s.Name, coach.IconForCategory(s.Category))
	if err != nil {
		return err
	}
	fmt.Printf("  %s Tracking %s %s\n", ui.Success.Render("✓"), h.Icon.Glyph(), ui.Accent.Render(h.Name))
	return nil
}

func printSuggestions(suggestions []coach.Suggestion) {
	fmt.Println()
	for _, s := range suggestions {
		icon := coach.IconForCategory(s.Category)
		fmt.Printf("  %s %s %s\n", icon.Glyph(), ui.Accent.Render(s.Name), ui.Muted.Render("["+s.Category+"]"))
		if s.Description != "" {
			fmt.Printf("     %s\n", s.Description)
		}
	}
}

// coachStatus notes on stderr that a coach request is in flight. It stays
// quiet when output is piped.
func coachStatus(cmd *cobra.Command, tty bool) {
	if !tty {
		return
	}
	var w io.Writer = os.Stderr
	if cmd != nil {
		w = cmd.ErrOrStderr()
	}
	fmt.Fprintln(w, ui.Muted.Render("  "+ui.IconIdea+" Asking the coach..."))
}

func cmdContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
