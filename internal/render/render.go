// Package render prints contacts for the non-interactive commands: styled
// tables on a terminal, tab-aligned text everywhere else.
package render

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/phonebook/internal/storage"
)

// EmptyListText is printed when there are no contacts to list.
const EmptyListText = "No contacts available. Add one with 'phonebook add'."

// Printer writes command results.
type Printer interface {
	// List prints the contact summaries in storage order.
	List(contacts []storage.Summary) error
	// Contact prints every field of one contact.
	Contact(c storage.Contact) error
	// Success prints a confirmation line.
	Success(text string) error
	// Warn prints a not-found or otherwise unhappy line.
	Warn(text string) error
}

// Options configures printer creation.
type Options struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force plain text even if TTY.
}

// NewPrinter returns a styled printer when the writer is a TTY, or a plain
// text printer otherwise. ForcePlain overrides TTY detection.
func NewPrinter(opts Options) Printer {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.ForcePlain || !IsTTY(opts.Writer) {
		return &PlainPrinter{w: opts.Writer}
	}
	return newStyledPrinter(opts.Writer)
}

// IsTTY reports whether w is connected to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainPrinter writes tab-aligned text with no escape sequences.
type PlainPrinter struct {
	w io.Writer
}

// NewPlainPrinter returns a PlainPrinter writing to w.
func NewPlainPrinter(w io.Writer) *PlainPrinter {
	return &PlainPrinter{w: w}
}

// List prints one contact per line under a header row.
func (p *PlainPrinter) List(contacts []storage.Summary) error {
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(p.w, EmptyListText)
		return err
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "FIRST NAME\tLAST NAME\tPHONE")
	for _, c := range contacts {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", c.FirstName, c.LastName, c.Phone)
	}
	return tw.Flush()
}

// Contact prints one "Label: value" line per field.
func (p *PlainPrinter) Contact(c storage.Contact) error {
	tw := tabwriter.NewWriter(p.w, 0, 4, 1, ' ', 0)
	for _, f := range c.Fields() {
		_, _ = fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value)
	}
	return tw.Flush()
}

// Success prints text on its own line.
func (p *PlainPrinter) Success(text string) error {
	_, err := fmt.Fprintln(p.w, text)
	return err
}

// Warn prints text on its own line.
func (p *PlainPrinter) Warn(text string) error {
	_, err := fmt.Fprintln(p.w, text)
	return err
}

// StyledPrinter renders lipgloss tables using the writer's color profile.
type StyledPrinter struct {
	w       io.Writer
	header  lipgloss.Style
	cell    lipgloss.Style
	label   lipgloss.Style
	border  lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
}

func newStyledPrinter(w io.Writer) *StyledPrinter {
	r := lipgloss.NewRenderer(w)
	return &StyledPrinter{
		w:       w,
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		label:   r.NewStyle().Bold(true).Padding(0, 1),
		border:  r.NewStyle().Foreground(lipgloss.Color("240")),
		success: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}),
		warn:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"}),
	}
}

// List prints the summaries as a bordered table.
func (p *StyledPrinter) List(contacts []storage.Summary) error {
	if len(contacts) == 0 {
		return p.Warn(EmptyListText)
	}
	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{c.FirstName, c.LastName, c.Phone})
	}
	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.border).
		Headers("First Name", "Last Name", "Phone").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return p.header
			}
			return p.cell
		})
	_, err := fmt.Fprintln(p.w, t.Render())
	return err
}

// Contact prints the fields as a two-column table.
func (p *StyledPrinter) Contact(c storage.Contact) error {
	rows := make([][]string, 0, len(c.Fields()))
	for _, f := range c.Fields() {
		rows = append(rows, []string{f.Label, f.Value})
	}
	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.border).
		Rows(rows...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return p.label
			}
			return p.cell
		})
	_, err := fmt.Fprintln(p.w, t.Render())
	return err
}

// Success prints text in the success color.
func (p *StyledPrinter) Success(text string) error {
	_, err := fmt.Fprintln(p.w, p.success.Render(text))
	return err
}

// Warn prints text in the warning color.
func (p *StyledPrinter) Warn(text string) error {
	_, err := fmt.Fprintln(p.w, p.warn.Render(text))
	return err
}
