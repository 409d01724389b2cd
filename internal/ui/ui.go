// Package ui renders CLI output, styled with lipgloss when writing to a
// terminal and as plain lines otherwise.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/internal/runner"
)

// Palette: Christmas-tree green and gold on the default background.
var (
	colorGold  = lipgloss.Color("#FFD700")
	colorGreen = lipgloss.Color("#00CC00")
	colorRed   = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#6C7A89")
)

var styles = struct {
	Label  lipgloss.Style
	Answer lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}{
	Label:  lipgloss.NewStyle().Foreground(colorGreen),
	Answer: lipgloss.NewStyle().Bold(true).Foreground(colorGold),
	Title:  lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	Muted:  lipgloss.NewStyle().Foreground(colorMuted),
	Error:  lipgloss.NewStyle().Foreground(colorRed),
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Printer writes results and listings to w.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter styles output only when color is requested and w is a terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	styled := false
	if f, ok := w.(*os.File); ok && color {
		styled = IsTerminal(f)
	}
	return &Printer{w: w, styled: styled}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// Result prints the two answer lines, with timings when requested.
func (p *Printer) Result(res runner.Result, timings bool) {
	parts := [...]struct {
		n       int
		answer  string
		elapsed fmt.Stringer
	}{
		{1, res.Part1, res.Elapsed1},
		{2, res.Part2, res.Elapsed2},
	}
	for _, part := range parts {
		line := p.render(styles.Label, fmt.Sprintf("Part %d:", part.n)) + " " + p.render(styles.Answer, part.answer)
		if timings {
			line += " " + p.render(styles.Muted, "("+part.elapsed.String()+")")
		}
		fmt.Fprintln(p.w, line)
	}
}

// Summary prints one line per result of a batch run.
func (p *Printer) Summary(results []runner.Result) {
	for _, res := range results {
		id := p.render(styles.Title, res.ID.String())
		switch {
		case res.Skipped:
			fmt.Fprintf(p.w, "%s %s\n", id, p.render(styles.Muted, "skipped (no input)"))
		case res.Err != nil:
			fmt.Fprintf(p.w, "%s %s\n", id, p.render(styles.Error, "error: "+res.Err.Error()))
		default:
			fmt.Fprintf(p.w, "%s %s %s\n", id,
				p.render(styles.Answer, res.Part1),
				p.render(styles.Answer, res.Part2))
		}
	}
}

// Challenges prints the ID and title of each challenge.
func (p *Printer) Challenges(cs []challenge.Challenge) {
	for _, c := range cs {
		fmt.Fprintf(p.w, "%s  %s\n", p.render(styles.Title, c.ID.String()), c.Title)
	}
}

// Info prints a challenge's title and description.
func (p *Printer) Info(c challenge.Challenge) {
	fmt.Fprintln(p.w, p.render(styles.Title, c.ID.String()+": "+c.Title))
	if d := strings.TrimSpace(c.Description); d != "" {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, d)
	}
}

// Error prints err on its own line.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.render(styles.Error, "error: "+err.Error()))
}
