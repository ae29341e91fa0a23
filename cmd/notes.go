package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rnwolfe/zenith/internal/tui"
	"github.com/rnwolfe/zenith/internal/ui"
	"github.com/spf13/cobra"
)

var (
	notesClear  bool
	notesAppend bool
)

var notesCmd = &cobra.Command{
	Use:   "notes [text...]",
	Short: "Read or write your journal notes",
	Long: `Without arguments, print your notes. With text, replace them.

Use "-" to read the new notes from stdin, --append to add a line instead of
replacing, and --clear to erase them.`,
	Example: `  zenith notes
  zenith notes "Slept badly, kept the walk short."
  zenith notes --append "Evening: felt great."
  cat journal.txt | zenith notes -`,
	RunE: runNotes,
}

func init() {
	notesCmd.Flags().BoolVar(&notesClear, "clear", false, "Erase all notes")
	notesCmd.Flags().BoolVarP(&notesAppend, "append", "a", false, "Append a line instead of replacing")
}

func runNotes(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	switch {
	case notesClear:
		a.tr.SetNotes("")
		ui.Ok("Notes cleared.")
		return nil

	case len(args) == 0:
		notes := a.tr.Notes()
		if notes == "" {
			fmt.Println(ui.Muted.Render("  No notes yet."))
			ui.Tip("`zenith notes \"how today went\"` to write some.")
			return nil
		}
		fmt.Println(notes)
		return nil
	}

	text := strings.Join(args, " ")
	if text == "-" {
		if tui.IsTTY() {
			fmt.Fprintln(os.Stderr, ui.Muted.Render("  Reading notes from stdin, end with Ctrl-D."))
		}
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimRight(string(b), "\n")
	}

	if notesAppend && a.tr.Notes() != "" {
		text = a.tr.Notes() + "\n" + text
	}
	a.tr.SetNotes(text)
	ui.Ok("Notes saved.")
	return nil
}
