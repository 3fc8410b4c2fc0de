package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// secretMask replaces secret values in status lines.
const secretMask = "********"

// statusPrinter writes the human-readable status lines of a run.
// Styles are bound to a renderer for w, so plain text is written when w is
// not a terminal.
type statusPrinter struct {
	w          io.Writer
	nameStyle  lipgloss.Style
	valueStyle lipgloss.Style
	mutedStyle lipgloss.Style
	okStyle    lipgloss.Style
	failStyle  lipgloss.Style
}

func newStatusPrinter(w io.Writer) *statusPrinter {
	r := lipgloss.NewRenderer(w)
	return &statusPrinter{
		w:          w,
		nameStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		valueStyle: r.NewStyle().Foreground(lipgloss.Color("35")),
		mutedStyle: r.NewStyle().Foreground(lipgloss.Color("244")),
		okStyle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		failStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Var prints one resolved variable as "NAME VALUE".
func (p *statusPrinter) Var(name, value string) {
	fmt.Fprintln(p.w, p.nameStyle.Render(name)+" "+p.valueStyle.Render(value))
}

// Secret prints a merged secret without its value.
func (p *statusPrinter) Secret(name string) {
	fmt.Fprintln(p.w, p.nameStyle.Render(name)+" "+p.mutedStyle.Render(secretMask))
}

// Notice prints an informational line.
func (p *statusPrinter) Notice(msg string) {
	fmt.Fprintln(p.w, p.mutedStyle.Render(msg))
}

// Finished reports how the external process ended.
func (p *statusPrinter) Finished(execFile string, state *os.ProcessState) {
	style := p.okStyle
	if !state.Success() {
		style = p.failStyle
	}
	fmt.Fprintf(p.w, "%s finished with status %s\n", execFile, style.Render(state.String()))
}
