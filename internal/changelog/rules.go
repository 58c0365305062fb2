package changelog

import (
	"strings"
	"unicode/utf8"
)

// Offense messages.
const (
	MsgMissingAuthors     = "entry is missing authors."
	MsgHeaderIndentation  = "header must start with '*' and 3 spaces."
	MsgBodyIndentation    = "line must be indented 4 spaces."
	MsgTrailingWhitespace = "trailing whitespace detected."
)

// validator inspects the lines of an entry. firstLine is the 1-based file
// line of lines[0]. Validators never modify lines.
type validator func(lines []string, firstLine int) []Offense

// validators run in this order for every entry.
var validators = []validator{
	validateAuthors,
	validateLeadingWhitespace,
	validateTrailingWhitespace,
}

// validateAuthors requires an attribution line somewhere in the entry.
// The scan runs backwards since authors conventionally come last.
func validateAuthors(lines []string, firstLine int) []Offense {
	for i := len(lines) - 1; i >= 0; i-- {
		if isAuthorsLine(lines[i]) {
			return nil
		}
	}

	header := lines[0]
	return []Offense{
		newOffense(RuleAuthors, header, firstLine, 0, markerWidth, MsgMissingAuthors),
	}
}

// validateLeadingWhitespace checks the header bullet and the indentation of
// every non-blank continuation line.
func validateLeadingWhitespace(lines []string, firstLine int) []Offense {
	var offenses []Offense

	if !isWellFormedHeader(lines[0]) {
		offenses = append(offenses,
			newOffense(RuleLeadingWhitespace, lines[0], firstLine, 0, markerWidth, MsgHeaderIndentation))
	}

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) || strings.HasPrefix(line, bodyIndent) {
			continue
		}
		offenses = append(offenses,
			newOffense(RuleLeadingWhitespace, line, firstLine+i, 0, markerWidth, MsgBodyIndentation))
	}

	return offenses
}

// validateTrailingWhitespace flags every line ending in a space or tab. The
// range covers the whole trailing run.
func validateTrailingWhitespace(lines []string, firstLine int) []Offense {
	var offenses []Offense

	for i, line := range lines {
		if !strings.HasSuffix(line, " ") && !strings.HasSuffix(line, "\t") {
			continue
		}
		start := utf8.RuneCountInString(strings.TrimRight(line, " \t"))
		end := utf8.RuneCountInString(line)
		offenses = append(offenses,
			newOffense(RuleTrailingWhitespace, line, firstLine+i, start, end, MsgTrailingWhitespace))
	}

	return offenses
}
