package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/skipkayhil/rail-inspector/internal/changelog"
)

// TextWriter prints each offense as a location line, the offending line,
// and a caret marker under the offending range.
type TextWriter struct {
	plain bool

	location func(a ...any) string
	message  func(a ...any) string
	caret    func(a ...any) string
	clean    func(a ...any) string
	dirty    func(a ...any) string
}

// NewTextWriter creates a TextWriter. plain disables colour.
func NewTextWriter(plain bool) *TextWriter {
	return &TextWriter{
		plain:    plain,
		location: color.New(color.Bold).SprintFunc(),
		message:  color.New(color.FgYellow).SprintFunc(),
		caret:    color.New(color.FgRed, color.Bold).SprintFunc(),
		clean:    color.New(color.FgGreen).SprintFunc(),
		dirty:    color.New(color.FgRed).SprintFunc(),
	}
}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	for _, f := range report.Files {
		if err := t.WriteFile(w, f); err != nil {
			return err
		}
	}
	return t.WriteSummary(w, report.Summary)
}

// WriteFile prints every offense of file.
func (t *TextWriter) WriteFile(w io.Writer, file File) error {
	ew := &errWriter{w: w}
	for _, o := range file.Offenses {
		ew.printf("%s %s\n", t.paint(t.location, fmt.Sprintf("%s:%d:", file.Path, o.LineNumber)), t.paint(t.message, o.Message))
		ew.println(o.Line)
		ew.println(t.paint(t.caret, CaretLine(o.Range)))
	}
	return ew.err
}

// WriteSummary prints the closing count line.
func (t *TextWriter) WriteSummary(w io.Writer, summary Summary) error {
	offenses := pluralize(summary.Offenses, "offense")
	if summary.Offenses == 0 {
		offenses = t.paint(t.clean, offenses)
	} else {
		offenses = t.paint(t.dirty, offenses)
	}

	ew := &errWriter{w: w}
	ew.printf("%s inspected, %s detected\n", pluralize(summary.Changelogs, "changelog"), offenses)
	return ew.err
}

func (t *TextWriter) paint(fn func(a ...any) string, s string) string {
	if t.plain {
		return s
	}
	return fn(s)
}

// CaretLine renders r as spaces up to its start followed by one caret per
// covered character.
func CaretLine(r changelog.Range) string {
	return strings.Repeat(" ", r.Start) + strings.Repeat("^", r.Len())
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
