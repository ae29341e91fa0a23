package tui

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rnwolfe/zenith/internal/ui"
)

// Item is a row in a Picker.
type Item interface {
	// FilterValue is matched against the query.
	FilterValue() string
	Title() string
	// Description is optional secondary text.
	Description() string
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithTitle sets the heading displayed above the picker.
func WithTitle(title string) PickerOption {
	return func(p *Picker) { p.title = title }
}

// WithPrompt sets the search prompt.
func WithPrompt(prompt string) PickerOption {
	return func(p *Picker) { p.prompt = prompt }
}

// WithHeight sets the maximum visible rows (0 = fit the terminal).
func WithHeight(h int) PickerOption {
	return func(p *Picker) { p.height = h }
}

// Picker is a fuzzy-search list selector. Use Run for the common case.
type Picker struct {
	title  string
	prompt string
	height int

	items    []Item
	filtered []scored
	query    []rune
	cursor   int
	offset   int
	chosen   Item
	canceled bool

	termWidth  int
	termHeight int
}

type scored struct {
	item  Item
	score int
}

// NewPicker creates a Picker over items.
func NewPicker(items []Item, opts ...PickerOption) *Picker {
	p := &Picker{
		prompt:     "> ",
		height:     10,
		items:      items,
		termWidth:  80,
		termHeight: 24,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.applyFilter()
	return p
}

// Run shows a picker and returns the selected item, or nil if the user
// canceled.
func Run(items []Item, opts ...PickerOption) (Item, error) {
	m, err := tea.NewProgram(NewPicker(items, opts...), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("picker: %w", err)
	}
	result := m.(*Picker)
	if result.canceled {
		return nil, nil
	}
	return result.chosen, nil
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Query returns the current search text.
func (p *Picker) Query() string { return string(p.query) }

// Chosen returns the selected item, or nil.
func (p *Picker) Chosen() Item { return p.chosen }

func (p *Picker) Init() tea.Cmd {
	return nil
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.termWidth, p.termHeight = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			p.canceled = true
			return p, tea.Quit
		case tea.KeyEnter:
			if len(p.filtered) > 0 {
				p.chosen = p.filtered[p.cursor].item
			}
			return p, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			p.move(-1)
		case tea.KeyDown, tea.KeyCtrlN:
			p.move(1)
		case tea.KeyBackspace:
			if n := len(p.query); n > 0 {
				p.query = p.query[:n-1]
				p.applyFilter()
			}
		case tea.KeyRunes, tea.KeySpace:
			p.query = append(p.query, msg.Runes...)
			if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
				p.query = append(p.query, ' ')
			}
			p.applyFilter()
		}
	}
	return p, nil
}

func (p *Picker) move(delta int) {
	p.cursor = min(max(p.cursor+delta, 0), max(len(p.filtered)-1, 0))
	vis := p.visibleHeight()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+vis {
		p.offset = p.cursor - vis + 1
	}
}

func (p *Picker) View() string {
	var b strings.Builder

	if p.title != "" {
		b.WriteString("  " + ui.Title.Render(p.title) + "\n\n")
	}

	prompt := lipgloss.NewStyle().Foreground(ui.Dawn).Bold(true).Render(p.prompt)
	b.WriteString("  " + prompt + string(p.query) + caret() + "\n\n")

	if len(p.filtered) == 0 {
		b.WriteString("  " + ui.Muted.Render("No matches") + "\n")
	}
	end := min(p.offset+p.visibleHeight(), len(p.filtered))
	for i := p.offset; i < end; i++ {
		b.WriteString(p.renderItem(p.filtered[i].item, i == p.cursor) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(fmt.Sprintf("  %d/%d · ↑↓ navigate · enter select · esc cancel", len(p.filtered), len(p.items))))
	b.WriteString("\n")
	return b.String()
}

func (p *Picker) visibleHeight() int {
	h := p.height
	if h <= 0 || h > p.termHeight-6 {
		h = p.termHeight - 6
	}
	return max(h, 3)
}

func (p *Picker) applyFilter() {
	p.filtered = p.filtered[:0]
	q := string(p.query)
	for _, item := range p.items {
		if ok, sc := FuzzyMatch(q, item.FilterValue()); ok {
			p.filtered = append(p.filtered, scored{item: item, score: sc})
		}
	}
	sortScored(p.filtered)
	p.cursor, p.offset = 0, 0
}

func (p *Picker) renderItem(item Item, selected bool) string {
	pointer := "  "
	title := item.Title()
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		title = lipgloss.NewStyle().Foreground(ui.Dawn).Bold(true).Render(title)
	}
	if desc := item.Description(); desc != "" {
		title += "  " + ui.Muted.Render(desc)
	}
	return "  " + pointer + title
}

func caret() string {
	return lipgloss.NewStyle().Foreground(ui.Dawn).Render("▎")
}

// sortScored orders by score, best first, keeping input order for ties.
func sortScored(items []scored) {
	slices.SortStableFunc(items, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
}
