// Package output prints the CLI's status lines. It depends only on
// fatih/color so any package may use it.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes status lines, optionally coloured.
type Printer struct {
	out   io.Writer
	plain bool
}

// NewPrinter creates a Printer. plain disables colour.
func NewPrinter(out io.Writer, plain bool) *Printer {
	return &Printer{out: out, plain: plain}
}

func (p *Printer) paint(attrs []color.Attribute, s string) string {
	if p.plain {
		return s
	}
	return color.New(attrs...).Sprint(s)
}

// Checking prints the directory about to be inspected.
func (p *Printer) Checking(path string) {
	fmt.Fprintf(p.out, "%s %s\n", p.paint([]color.Attribute{color.FgCyan}, "checking"), path)
}

// Watching announces watch mode for count files.
func (p *Printer) Watching(count int) {
	noun := "changelogs"
	if count == 1 {
		noun = "changelog"
	}
	msg := fmt.Sprintf("watching %d %s for changes (Ctrl+C to stop)", count, noun)
	fmt.Fprintf(p.out, "\n%s\n", p.paint([]color.Attribute{color.Faint}, msg))
}

// Changed prints the files that triggered a re-run.
func (p *Printer) Changed(paths []string) {
	arrow := p.paint([]color.Attribute{color.FgMagenta}, "→ changed:")
	fmt.Fprintf(p.out, "\n%s %s\n", arrow, strings.Join(paths, ", "))
}

// Warning prints a yellow warning line.
func (p *Printer) Warning(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.paint([]color.Attribute{color.FgYellow, color.Bold}, "Warning:"), msg)
}
