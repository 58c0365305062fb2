package changelog

import "slices"

// Entry is a single changelog entry: a header line followed by optional
// description and attribution lines.
//
// Entries are immutable. All rules run once when the entry is constructed.
type Entry struct {
	lines     []string
	firstLine int
	offenses  []Offense
}

// NewEntry builds an Entry from lines, the first of which is the header.
// The header is assumed to be line 1 of its file. It panics if lines is
// empty, since an entry without a header cannot exist.
func NewEntry(lines []string) *Entry {
	return newEntryAt(lines, 1)
}

// newEntryAt builds an Entry whose header sits on the given 1-based line.
// lines is copied so later reuse of the caller's slice cannot alter the entry.
func newEntryAt(lines []string, firstLine int) *Entry {
	if len(lines) == 0 {
		panic("changelog: entry requires at least a header line")
	}

	e := &Entry{
		lines:     slices.Clone(lines),
		firstLine: firstLine,
	}
	for _, validate := range validators {
		e.offenses = append(e.offenses, validate(e.lines, e.firstLine)...)
	}
	return e
}

// Header returns the first line of the entry.
func (e *Entry) Header() string {
	return e.lines[0]
}

// Lines returns a copy of every line in the entry, header included.
func (e *Entry) Lines() []string {
	return slices.Clone(e.lines)
}

// FirstLine returns the 1-based line number of the header in its file.
func (e *Entry) FirstLine() int {
	return e.firstLine
}

// Offenses returns a copy of the offenses found in the entry, in the order
// the rules produced them.
func (e *Entry) Offenses() []Offense {
	return slices.Clone(e.offenses)
}

// Valid returns true if the entry has no offenses.
func (e *Entry) Valid() bool {
	return len(e.offenses) == 0
}

// Equal reports whether two entries hold the same lines at the same position.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.firstLine == other.firstLine && slices.Equal(e.lines, other.lines)
}
