// Package ui renders the console messages of the bank command.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes styled lines to a writer. Colors are dropped when the
// writer is not a terminal or color is disabled.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	version lipgloss.Style
	pending lipgloss.Style
	done    lipgloss.Style
	check   lipgloss.Style
}

func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:       w,
		title:   r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		version: r.NewStyle().Foreground(lipgloss.Color("6")),
		pending: r.NewStyle().Foreground(lipgloss.Color("3")),
		done:    r.NewStyle().Foreground(lipgloss.Color("2")),
		check:   r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) Banner(name, version string) {
	p.Println(p.title.Render(name), p.version.Render(version))
}

// Pending styles something about to happen, or already there.
func (p *Printer) Pending(s string) string { return p.pending.Render(s) }

// Done styles something that was just created.
func (p *Printer) Done(s string) string { return p.done.Render(s) }

// Note styles informational values.
func (p *Printer) Note(s string) string { return p.version.Render(s) }

func (p *Printer) Check() string { return p.check.Render("✓") }
