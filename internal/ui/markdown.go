package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// RenderMarkdown renders markdown for the terminal at the given wrap width.
// It returns md unchanged if rendering fails.
func RenderMarkdown(md string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if ColorEnabled() {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// WriteMarkdown writes md to w, rendered when tty is true and raw is false.
func WriteMarkdown(w io.Writer, md string, tty, raw bool) error {
	if raw || !tty {
		_, err := fmt.Fprintln(w, md)
		return err
	}
	_, err := fmt.Fprint(w, RenderMarkdown(md, 100))
	return err
}
