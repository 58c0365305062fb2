package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerInterval = 100 * time.Millisecond

// Indicator wraps a spinner that is only shown when enabled. A disabled
// Indicator accepts every call and prints nothing.
type Indicator struct {
	spinner *spinner.Spinner
	symbols ProgressSymbols
	out     io.Writer
}

// NewIndicator creates an Indicator writing to out. enabled should be false
// for non-interactive output, plain mode, or a single file.
func NewIndicator(out io.Writer, caps TerminalCapabilities, enabled bool) *Indicator {
	symbols := SelectSymbols(caps)
	ind := &Indicator{symbols: symbols, out: out}
	if enabled {
		ind.spinner = spinner.New(spinner.CharSets[symbols.SpinnerSet], spinnerInterval, spinner.WithWriter(out))
	}
	return ind
}

// Enabled reports whether the spinner is shown.
func (i *Indicator) Enabled() bool {
	return i.spinner != nil
}

// Start shows the spinner with the inspection message for count changelogs.
func (i *Indicator) Start(count int) {
	if i.spinner == nil {
		return
	}
	i.spinner.Suffix = " " + InspectingMessage(count)
	i.spinner.Start()
}

// Done stops the spinner and prints a final status line. It is a no-op
// when the spinner is disabled.
func (i *Indicator) Done(success bool, message string) {
	if i.spinner == nil {
		return
	}
	i.spinner.Stop()
	symbol := i.symbols.Checkmark
	if !success {
		symbol = i.symbols.Failure
	}
	fmt.Fprintf(i.out, "%s %s\n", symbol, message)
}

// InspectingMessage is the spinner text for count changelogs.
func InspectingMessage(count int) string {
	if count == 1 {
		return "Inspecting 1 changelog"
	}
	return fmt.Sprintf("Inspecting %d changelogs", count)
}

// InspectedMessage is the final status line after count changelogs parsed.
func InspectedMessage(count int) string {
	if count == 1 {
		return "Inspected 1 changelog"
	}
	return fmt.Sprintf("Inspected %d changelogs", count)
}
