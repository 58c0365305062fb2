package changelog

import (
	"fmt"
	"strings"
	"testing"
)

// generateLargeChangelog builds a changelog with entryCount well-formed
// entries followed by a stable-branch footer.
func generateLargeChangelog(entryCount int) string {
	var sb strings.Builder

	for i := 0; i < entryCount; i++ {
		fmt.Fprintf(&sb, "*   Entry %d with a short summary of the change.\n\n", i+1)
		sb.WriteString("    A description that wraps onto a second line of text and keeps\n")
		sb.WriteString("    going for a while, as real entries tend to do.\n\n")
		fmt.Fprintf(&sb, "    *Author Number%c*\n\n", 'A'+rune(i%26))
	}
	sb.WriteString(testFooter)

	return sb.String()
}

func TestGenerateLargeChangelog_IsClean(t *testing.T) {
	t.Parallel()

	c := Parse("bench.md", generateLargeChangelog(50))
	if len(c.Entries) != 50 {
		t.Fatalf("got %d entries, want 50", len(c.Entries))
	}
	if !c.Valid() {
		t.Fatalf("generated changelog has offenses: %v", c.Offenses())
	}
}

func BenchmarkParse_1000Entries(b *testing.B) {
	text := generateLargeChangelog(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse("CHANGELOG.md", text)
	}
}

func BenchmarkParse_100Entries(b *testing.B) {
	text := generateLargeChangelog(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse("CHANGELOG.md", text)
	}
}

// BenchmarkOffenses_1000Entries measures collecting offenses from a parsed changelog.
func BenchmarkOffenses_1000Entries(b *testing.B) {
	c := Parse("CHANGELOG.md", generateLargeChangelog(1000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Offenses()
	}
}
