package changelog

import (
	"fmt"
	"unicode/utf8"
)

// Rule identifies the check that produced an Offense.
type Rule string

const (
	RuleAuthors            Rule = "authors"
	RuleLeadingWhitespace  Rule = "leading-whitespace"
	RuleTrailingWhitespace Rule = "trailing-whitespace"
)

// Rules returns every rule in the order validators run.
func Rules() []Rule {
	return []Rule{RuleAuthors, RuleLeadingWhitespace, RuleTrailingWhitespace}
}

// IsValidRule reports whether name is a known rule identifier.
func IsValidRule(name string) bool {
	for _, r := range Rules() {
		if string(r) == name {
			return true
		}
	}
	return false
}

// Range is a half-open interval [Start, End) of character (rune) offsets
// within a line.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of characters covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Offense is a single formatting violation within an entry.
type Offense struct {
	Rule       Rule   `json:"rule"`
	Line       string `json:"line"`
	LineNumber int    `json:"lineNumber"`
	Range      Range  `json:"range"`
	Message    string `json:"message"`
}

// newOffense builds an Offense with its range clamped to the rune length of
// line.
func newOffense(rule Rule, line string, lineNumber, start, end int, message string) Offense {
	width := utf8.RuneCountInString(line)
	start = clamp(start, 0, width)
	end = clamp(end, start, width)
	return Offense{
		Rule:       rule,
		Line:       line,
		LineNumber: lineNumber,
		Range:      Range{Start: start, End: end},
		Message:    message,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
