package changelog

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// Changelog is a parsed CHANGELOG file. Entries are fully populated on
// construction and never modified afterwards.
type Changelog struct {
	Path    string
	Entries []*Entry
}

// NotFoundError is returned by Load when the changelog file does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("changelog %q not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Parse builds a Changelog from in-memory text. path only identifies the
// changelog in diagnostics.
func Parse(path, text string) *Changelog {
	return &Changelog{
		Path:    path,
		Entries: ParseEntries(text),
	}
}

// Load reads the file at path from fsys and parses it.
// A missing file yields a *NotFoundError wrapping fs.ErrNotExist.
func Load(fsys afero.Fs, path string) (*Changelog, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("reading changelog %s: %w", path, err)
	}

	return Parse(path, string(data)), nil
}

// Offenses returns every offense in the changelog, in entry order.
func (c *Changelog) Offenses() []Offense {
	var offenses []Offense
	for _, e := range c.Entries {
		offenses = append(offenses, e.offenses...)
	}
	return offenses
}

// OffenseCount returns the total number of offenses across all entries.
func (c *Changelog) OffenseCount() int {
	count := 0
	for _, e := range c.Entries {
		count += len(e.offenses)
	}
	return count
}

// Valid returns true if no entry has an offense.
func (c *Changelog) Valid() bool {
	return len(c.InvalidEntries()) == 0
}

// InvalidEntries returns the entries that have at least one offense.
func (c *Changelog) InvalidEntries() []*Entry {
	var invalid []*Entry
	for _, e := range c.Entries {
		if !e.Valid() {
			invalid = append(invalid, e)
		}
	}
	return invalid
}
