// Package report renders changelog offenses for people and for tools.
//
// Three formats are supported:
//   - text  - one block per offense with a caret marker, then a summary line (default)
//   - json  - the full report as a single JSON document
//   - sarif - SARIF v2.1.0 for code scanning uploads
//
// A [Reporter] receives changelogs one at a time through [Reporter.Accept]
// and writes the closing output in [Reporter.Finish]. The text format
// streams as changelogs arrive; the machine formats buffer until Finish.
package report
