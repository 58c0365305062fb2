package changelog

import (
	"slices"
	"strings"
)

// Parser segments changelog text into entries.
//
// At each position the parser checks, in order:
//  1. the footer sentence, which flushes the pending lines and is discarded
//  2. a "*" bullet while lines are pending, which flushes them
//  3. otherwise, one line is appended to the pending group
//
// Non-blank lines still pending at the end of input form a final entry.
type Parser struct {
	scanner *Scanner

	// pending holds the lines of the entry currently being read.
	pending      []string
	pendingStart int
	lineNo       int

	entries []*Entry
}

// NewParser returns a Parser over text.
func NewParser(text string) *Parser {
	return &Parser{
		scanner: NewScanner(text),
		lineNo:  1,
	}
}

// ParseEntries is a convenience function that parses text in one call.
func ParseEntries(text string) []*Entry {
	return NewParser(text).Parse()
}

// Parse consumes the whole input and returns the entries in file order.
func (p *Parser) Parse() []*Entry {
	for !p.scanner.AtEnd() {
		if n := p.scanner.Match(footerPattern); n >= 0 {
			p.flushPending()
			p.scanner.Skip(n)
			p.lineNo++
			continue
		}

		if len(p.pending) > 0 && p.scanner.Peek(len(BulletMarker)) == BulletMarker {
			p.flushPending()
		}

		p.parseLine()
	}

	p.flushPending()

	return p.entries
}

// parseLine reads one line, without its terminator, into the pending group.
func (p *Parser) parseLine() {
	line := p.scanner.ScanUntil(newlinePattern)
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if len(p.pending) == 0 {
		p.pendingStart = p.lineNo
	}
	p.pending = append(p.pending, line)
	p.lineNo++
}

// flushPending turns the pending group into an Entry. A group holding only
// blank lines is dropped without producing an entry.
func (p *Parser) flushPending() {
	if len(p.pending) == 0 {
		return
	}

	if slices.ContainsFunc(p.pending, func(line string) bool { return !isBlank(line) }) {
		p.entries = append(p.entries, newEntryAt(p.pending, p.pendingStart))
	}
	p.pending = nil
}
