// Package changelog parses and lints Rails-style CHANGELOG.md files.
//
// This package implements:
//   - A forward-only Scanner over the raw changelog text
//   - A Parser that segments the text into entries, honouring the
//     "Please check [x-y-stable](...) for previous changes." footer
//   - Entry construction, which runs every formatting rule exactly once
//   - Offenses addressed by line and character range for caret rendering
//
// A changelog entry looks like:
//
//	*   Header text describing the change.
//
//	    Optional description, indented four spaces.
//
//	    *Author Name*
//
// Parsing never fails: malformed entries are reported as offenses. The only
// error surfaced by this package is a missing file in Load.
package changelog
