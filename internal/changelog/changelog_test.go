package changelog

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures_OffenseCounts(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		fixture     string
		wantEntries int
		wantByRule  map[Rule]int
	}{
		"railties changelog is clean": {
			fixture:     "railties_06e9fbd.md",
			wantEntries: 21,
			wantByRule:  map[Rule]int{},
		},
		"two entries missing authors": {
			fixture:     "missing_authors.md",
			wantEntries: 4,
			wantByRule:  map[Rule]int{RuleAuthors: 2},
		},
		"blank padding before footer": {
			fixture:     "footer_only.md",
			wantEntries: 0,
			wantByRule:  map[Rule]int{},
		},
		"sixteen lines with trailing whitespace": {
			fixture:     "trailing_whitespace.md",
			wantEntries: 5,
			wantByRule:  map[Rule]int{RuleTrailingWhitespace: 16},
		},
		"five under-indented lines": {
			fixture:     "leading_whitespace.md",
			wantEntries: 4,
			wantByRule:  map[Rule]int{RuleLeadingWhitespace: 5},
		},
		"wrongly indented header": {
			fixture:     "wrong_header.md",
			wantEntries: 1,
			wantByRule:  map[Rule]int{RuleLeadingWhitespace: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := Parse(tt.fixture, readFixture(t, tt.fixture))

			assert.Len(t, c.Entries, tt.wantEntries)

			byRule := map[Rule]int{}
			for _, o := range c.Offenses() {
				byRule[o.Rule]++
			}
			assert.Equal(t, tt.wantByRule, byRule)

			total := 0
			for _, n := range tt.wantByRule {
				total += n
			}
			assert.Equal(t, total, c.OffenseCount())
			assert.Equal(t, total == 0, c.Valid())
		})
	}
}

func TestMissingAuthors_AnchoredAtHeaders(t *testing.T) {
	t.Parallel()

	c := Parse("CHANGELOG.md", readFixture(t, "missing_authors.md"))

	offenses := c.Offenses()
	require.Len(t, offenses, 2)
	assert.Equal(t, "*   Add `ActiveRecord::Base.generates_token_for`.", offenses[0].Line)
	assert.Equal(t, 5, offenses[0].LineNumber)
	assert.Equal(t, "*   Allow `where` to accept a composite key tuple.", offenses[1].Line)
	assert.Equal(t, 13, offenses[1].LineNumber)

	invalid := c.InvalidEntries()
	require.Len(t, invalid, 2)
	assert.Equal(t, offenses[0].Line, invalid[0].Header())
	assert.Equal(t, offenses[1].Line, invalid[1].Header())
}

func TestWrongHeader_SingleOffense(t *testing.T) {
	t.Parallel()

	c := Parse("CHANGELOG.md", readFixture(t, "wrong_header.md"))

	offenses := c.Offenses()
	require.Len(t, offenses, 1)
	assert.Equal(t, MsgHeaderIndentation, offenses[0].Message)
	assert.Equal(t, 1, offenses[0].LineNumber)
	assert.Equal(t, Range{Start: 0, End: 4}, offenses[0].Range)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	text := "*   Entry.\n\n    *Jane Doe*\n\n" + testFooter
	require.NoError(t, afero.WriteFile(fsys, "/rails/railties/CHANGELOG.md", []byte(text), 0o644))

	c, err := Load(fsys, "/rails/railties/CHANGELOG.md")

	require.NoError(t, err)
	assert.Equal(t, "/rails/railties/CHANGELOG.md", c.Path)
	assert.Len(t, c.Entries, 1)
	assert.True(t, c.Valid())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	c, err := Load(afero.NewMemMapFs(), "/rails/missing/CHANGELOG.md")

	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "/rails/missing/CHANGELOG.md")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "/rails/missing/CHANGELOG.md", nf.Path)
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.True(t, IsNotFound(&NotFoundError{Path: "x"}))
}
