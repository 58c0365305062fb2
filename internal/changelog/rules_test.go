package changelog

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry_PanicsWithoutLines(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewEntry(nil) })
}

func TestNewEntry_CopiesInput(t *testing.T) {
	t.Parallel()

	lines := []string{"*   Entry.", "    *Jane Doe*"}
	e := NewEntry(lines)
	lines[0] = "changed"

	assert.Equal(t, "*   Entry.", e.Header())
}

func TestValidateAuthors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		lines     []string
		wantCount int
	}{
		"authors on last line": {
			lines:     []string{"*   Entry.", "", "    *Jane Doe*"},
			wantCount: 0,
		},
		"authors followed by blank lines": {
			lines:     []string{"*   Entry.", "", "    *Jane Doe*", "", ""},
			wantCount: 0,
		},
		"authors in the middle": {
			lines:     []string{"*   Entry.", "    *Jane Doe*", "    More text."},
			wantCount: 0,
		},
		"no authors": {
			lines:     []string{"*   Entry.", "", "    Description."},
			wantCount: 1,
		},
		"header only": {
			lines:     []string{"*   Entry."},
			wantCount: 1,
		},
		"numeric emphasis is not an author": {
			lines:     []string{"*   Entry.", "    *2024*"},
			wantCount: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			offenses := validateAuthors(tt.lines, 1)

			require.Len(t, offenses, tt.wantCount)
			for _, o := range offenses {
				assert.Equal(t, RuleAuthors, o.Rule)
				assert.Equal(t, tt.lines[0], o.Line, "authors offense is anchored at the header")
				assert.Equal(t, 1, o.LineNumber)
				assert.Equal(t, Range{Start: 0, End: 4}, o.Range)
				assert.Equal(t, MsgMissingAuthors, o.Message)
			}
		})
	}
}

func TestValidateLeadingWhitespace_Header(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		header    string
		wantCount int
		wantRange Range
	}{
		"well formed":  {header: "*   Entry.", wantCount: 0},
		"two spaces":   {header: "*  Entry.", wantCount: 1, wantRange: Range{Start: 0, End: 4}},
		"four spaces":  {header: "*    Entry.", wantCount: 1, wantRange: Range{Start: 0, End: 4}},
		"tab":          {header: "*\tEntry.", wantCount: 1, wantRange: Range{Start: 0, End: 4}},
		"short header": {header: "*", wantCount: 1, wantRange: Range{Start: 0, End: 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// The body is badly indented too. It must not change the header result.
			lines := []string{tt.header, "  body", "    *Jane Doe*"}
			var headerOffenses []Offense
			for _, o := range validateLeadingWhitespace(lines, 10) {
				if o.LineNumber == 10 {
					headerOffenses = append(headerOffenses, o)
				}
			}

			require.Len(t, headerOffenses, tt.wantCount)
			if tt.wantCount == 1 {
				assert.Equal(t, tt.header, headerOffenses[0].Line)
				assert.Equal(t, tt.wantRange, headerOffenses[0].Range)
				assert.Equal(t, MsgHeaderIndentation, headerOffenses[0].Message)
			}
		})
	}
}

func TestValidateLeadingWhitespace_Body(t *testing.T) {
	t.Parallel()

	lines := []string{
		"*   Entry.",
		"",
		"    Good.",
		"   Three spaces.",
		"      Deeper is fine.",
		"\tTab.",
		"    ",
		"  ",
		"No indent.",
		"    *Jane Doe*",
	}

	offenses := validateLeadingWhitespace(lines, 5)

	require.Len(t, offenses, 3)
	assert.Equal(t, "   Three spaces.", offenses[0].Line)
	assert.Equal(t, 8, offenses[0].LineNumber)
	assert.Equal(t, "\tTab.", offenses[1].Line)
	assert.Equal(t, 10, offenses[1].LineNumber)
	assert.Equal(t, "No indent.", offenses[2].Line)
	assert.Equal(t, 13, offenses[2].LineNumber)
	for _, o := range offenses {
		assert.Equal(t, RuleLeadingWhitespace, o.Rule)
		assert.Equal(t, MsgBodyIndentation, o.Message)
	}
	assert.Equal(t, Range{Start: 0, End: 4}, offenses[0].Range)
	assert.Equal(t, Range{Start: 0, End: 4}, offenses[2].Range)
}

func TestValidateTrailingWhitespace(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		line      string
		wantRange *Range
	}{
		"clean line":        {line: "    Text.", wantRange: nil},
		"one space":         {line: "    Text. ", wantRange: &Range{Start: 9, End: 10}},
		"several spaces":    {line: "    Text.   ", wantRange: &Range{Start: 9, End: 12}},
		"tab":               {line: "    Text.\t", wantRange: &Range{Start: 9, End: 10}},
		"mixed run":         {line: "    Text. \t ", wantRange: &Range{Start: 9, End: 12}},
		"whitespace only":   {line: "    ", wantRange: &Range{Start: 0, End: 4}},
		"empty":             {line: "", wantRange: nil},
		"inner space only":  {line: "    a b", wantRange: nil},
		"non-breaking text": {line: "    Text. ", wantRange: nil},
		"accented author":   {line: "    *Étienne Barrié* ", wantRange: &Range{Start: 20, End: 21}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			offenses := validateTrailingWhitespace([]string{"*   Entry.", tt.line}, 1)

			if tt.wantRange == nil {
				assert.Empty(t, offenses)
				return
			}
			require.Len(t, offenses, 1)
			assert.Equal(t, RuleTrailingWhitespace, offenses[0].Rule)
			assert.Equal(t, tt.line, offenses[0].Line)
			assert.Equal(t, 2, offenses[0].LineNumber)
			assert.Equal(t, *tt.wantRange, offenses[0].Range)
			assert.Equal(t, utf8.RuneCountInString(tt.line), offenses[0].Range.End)
			assert.Equal(t, MsgTrailingWhitespace, offenses[0].Message)
		})
	}
}

func TestValidateTrailingWhitespace_Header(t *testing.T) {
	t.Parallel()

	offenses := validateTrailingWhitespace([]string{"*   Entry. "}, 1)

	require.Len(t, offenses, 1)
	assert.Equal(t, Range{Start: 10, End: 11}, offenses[0].Range)
}

func TestValidators_DoNotMutateInput(t *testing.T) {
	t.Parallel()

	lines := []string{"*  Entry. ", "  body\t", ""}
	snapshot := append([]string(nil), lines...)

	for _, validate := range validators {
		validate(lines, 1)
	}

	assert.Equal(t, snapshot, lines)
}

func TestNewEntry_OffenseOrder(t *testing.T) {
	t.Parallel()

	e := NewEntry([]string{"*  Entry. ", "  body"})

	offenses := e.Offenses()
	require.Len(t, offenses, 4)
	assert.Equal(t, RuleAuthors, offenses[0].Rule)
	assert.Equal(t, RuleLeadingWhitespace, offenses[1].Rule)
	assert.Equal(t, 1, offenses[1].LineNumber)
	assert.Equal(t, RuleLeadingWhitespace, offenses[2].Rule)
	assert.Equal(t, 2, offenses[2].LineNumber)
	assert.Equal(t, RuleTrailingWhitespace, offenses[3].Rule)
	assert.False(t, e.Valid())
}

func TestOffense_RangeWithinLine(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		line       string
		start, end int
		want       Range
	}{
		"inside":           {line: "abcdef", start: 1, end: 3, want: Range{Start: 1, End: 3}},
		"end past line":    {line: "ab", start: 0, end: 4, want: Range{Start: 0, End: 2}},
		"negative start":   {line: "ab", start: -2, end: 1, want: Range{Start: 0, End: 1}},
		"end before start": {line: "abcd", start: 3, end: 1, want: Range{Start: 3, End: 3}},
		"empty line":       {line: "", start: 0, end: 4, want: Range{Start: 0, End: 0}},
		"multibyte line":   {line: "*Éé*", start: 2, end: 6, want: Range{Start: 2, End: 4}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			o := newOffense(RuleAuthors, tt.line, 1, tt.start, tt.end, "msg")
			assert.Equal(t, tt.want, o.Range)
			assert.GreaterOrEqual(t, o.Range.Start, 0)
			assert.LessOrEqual(t, o.Range.End, utf8.RuneCountInString(tt.line))
		})
	}
}

func TestIsValidRule(t *testing.T) {
	t.Parallel()

	for _, r := range Rules() {
		assert.True(t, IsValidRule(string(r)))
	}
	assert.False(t, IsValidRule("line-length"))
}
