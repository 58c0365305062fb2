// Package shared provides constants and types used across CLI subpackages.
package shared

import (
	"errors"
	"fmt"
)

// Exit codes for the rail-inspector CLI.
const (
	// ExitSuccess means every changelog is clean.
	ExitSuccess = 0
	// ExitOffenses means at least one offense was reported.
	ExitOffenses = 1
	// ExitInvalidArguments means a flag, argument or config value was rejected.
	ExitInvalidArguments = 3
	// ExitMissingDependency means a changelog or the repository could not be found.
	ExitMissingDependency = 4
)

// Command group IDs shown in help output.
const (
	GroupInspection    = "inspection"
	GroupConfiguration = "configuration"
)

// ExitError carries a specific process exit code through cobra.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError returns an error that makes the CLI exit with code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode maps err to a process exit code. nil is success, an ExitError
// anywhere in the chain supplies its own code, and anything else is
// ExitOffenses.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitOffenses
}
