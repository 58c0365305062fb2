package report

import (
	"fmt"
	"io"

	"github.com/skipkayhil/rail-inspector/internal/changelog"
)

// Report is the complete result of one inspection run.
type Report struct {
	Tool    string  `json:"tool"`
	Version string  `json:"version"`
	Files   []File  `json:"files"`
	Summary Summary `json:"summary"`
}

// File holds the reported offenses of a single changelog.
type File struct {
	Path     string              `json:"path"`
	Entries  int                 `json:"entries"`
	Offenses []changelog.Offense `json:"offenses"`
}

// Summary counts what a run inspected and found.
type Summary struct {
	Changelogs int `json:"changelogs"`
	Offenses   int `json:"offenses"`
}

// Options configures a Reporter.
type Options struct {
	// Format is one of Formats(). Empty selects text.
	Format string
	// Plain disables colour in text output.
	Plain bool
	// DisabledRules lists rules whose offenses are dropped before reporting.
	DisabledRules []string
	// Version is recorded in machine-readable reports.
	Version string
}

// Reporter accumulates changelog results and writes them in one format.
type Reporter struct {
	out      io.Writer
	writer   Writer
	disabled map[changelog.Rule]bool
	report   Report
}

// New creates a Reporter that writes to out.
// It returns an error for an unknown format or rule name.
func New(out io.Writer, opts Options) (*Reporter, error) {
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	writer, err := GetWriter(format, opts.Plain)
	if err != nil {
		return nil, err
	}

	disabled := make(map[changelog.Rule]bool, len(opts.DisabledRules))
	for _, name := range opts.DisabledRules {
		if !changelog.IsValidRule(name) {
			return nil, fmt.Errorf("unknown rule %q", name)
		}
		disabled[changelog.Rule(name)] = true
	}

	return &Reporter{
		out:      out,
		writer:   writer,
		disabled: disabled,
		report: Report{
			Tool:    "rail-inspector",
			Version: opts.Version,
			Files:   []File{},
		},
	}, nil
}

// Accept records the offenses of c. With a streaming format the offenses are
// written immediately.
func (r *Reporter) Accept(c *changelog.Changelog) error {
	file := File{
		Path:     c.Path,
		Entries:  len(c.Entries),
		Offenses: []changelog.Offense{},
	}
	for _, o := range c.Offenses() {
		if r.disabled[o.Rule] {
			continue
		}
		file.Offenses = append(file.Offenses, o)
	}

	r.report.Files = append(r.report.Files, file)
	r.report.Summary.Changelogs++
	r.report.Summary.Offenses += len(file.Offenses)

	if sw, ok := r.writer.(StreamWriter); ok {
		if err := sw.WriteFile(r.out, file); err != nil {
			return fmt.Errorf("reporting %s: %w", c.Path, err)
		}
	}
	return nil
}

// Finish writes the summary, or the whole report for buffered formats.
func (r *Reporter) Finish() error {
	if sw, ok := r.writer.(StreamWriter); ok {
		return sw.WriteSummary(r.out, r.report.Summary)
	}
	return r.writer.Write(r.out, &r.report)
}

// Summary returns the counts accumulated so far.
func (r *Reporter) Summary() Summary {
	return r.report.Summary
}

// OffenseCount returns the number of reported offenses so far.
func (r *Reporter) OffenseCount() int {
	return r.report.Summary.Offenses
}

// Reset clears accumulated results so the Reporter can be reused, as in
// watch mode.
func (r *Reporter) Reset() {
	r.report.Files = []File{}
	r.report.Summary = Summary{}
}
