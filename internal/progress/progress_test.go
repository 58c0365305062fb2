package progress

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		caps TerminalCapabilities
		want ProgressSymbols
	}{
		"unicode": {
			caps: TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			want: ProgressSymbols{Checkmark: "✓", Failure: "✗", SpinnerSet: 14},
		},
		"ascii": {
			caps: TerminalCapabilities{IsTTY: true},
			want: ProgressSymbols{Checkmark: "[OK]", Failure: "[FAIL]", SpinnerSet: 9},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SelectSymbols(tt.caps))
		})
	}
}

func TestDetectTerminalCapabilities_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	caps := DetectTerminalCapabilities(f)

	assert.False(t, caps.IsTTY)
	assert.False(t, caps.SupportsColor)
	assert.False(t, caps.SupportsUnicode)
	assert.Zero(t, caps.Width)
}

func TestIndicator_Disabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ind := NewIndicator(&buf, TerminalCapabilities{}, false)

	ind.Start(12)
	ind.Done(true, "done")

	assert.False(t, ind.Enabled())
	assert.Empty(t, buf.String())
}

func TestIndicator_Enabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ind := NewIndicator(&buf, TerminalCapabilities{}, true)

	ind.Start(2)
	ind.Done(false, "2 offenses")

	assert.True(t, ind.Enabled())
	assert.Contains(t, buf.String(), "[FAIL] 2 offenses\n")
}

func TestInspectingMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Inspecting 1 changelog", InspectingMessage(1))
	assert.Equal(t, "Inspecting 12 changelogs", InspectingMessage(12))
	assert.Equal(t, "Inspected 1 changelog", InspectedMessage(1))
	assert.Equal(t, "Inspected 3 changelogs", InspectedMessage(3))
}
