package changelog

import "regexp"

// FooterText is the literal prefix of the trailing footer sentence.
const FooterText = "Please check"

// BulletMarker starts every entry header.
const BulletMarker = "*"

var (
	// footerPattern matches the complete footer sentence anchored at the
	// cursor. The terminating newline is optional only at end of input.
	footerPattern = regexp.MustCompile(`^` + FooterText + ` \[\d+-\d+-stable\]\(.*\) for previous changes\.(?:\r?\n|$)`)

	// newlinePattern delimits logical lines.
	newlinePattern = regexp.MustCompile(`\n`)

	// authorsPattern matches an attribution such as "*Jane Doe*" or
	// "*Jane Doe*, *John Smith*". Digits are excluded so that emphasised
	// numbers or versions are not mistaken for names.
	authorsPattern = regexp.MustCompile(`\*[^\d\s]+(\s[^\d\s]+)*\*`)

	// headerPattern is the required shape of line 0 of an entry.
	headerPattern = regexp.MustCompile(`^\* {3}\S`)

	// nonBlankPattern reports whether a line carries any content.
	nonBlankPattern = regexp.MustCompile(`\S`)
)

// bodyIndent is the minimum indentation of non-blank continuation lines.
const bodyIndent = "    "

// markerWidth is the width of the bullet-and-indent region flagged by
// header and indentation offenses.
const markerWidth = len(BulletMarker) + 3

// isBlank reports whether line contains only whitespace.
func isBlank(line string) bool {
	return !nonBlankPattern.MatchString(line)
}

// isAuthorsLine reports whether line carries an attribution marker.
func isAuthorsLine(line string) bool {
	return authorsPattern.MatchString(line)
}

// isWellFormedHeader reports whether line starts with "*" and exactly three spaces.
func isWellFormedHeader(line string) bool {
	return headerPattern.MatchString(line)
}
