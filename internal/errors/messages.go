package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the rail-inspector CLI.

// ChangelogNotFound reports a changelog path that does not exist.
func ChangelogNotFound(path string, err error) *CLIError {
	e := NewPrerequisiteError(
		fmt.Sprintf("changelog not found: %s", path),
		"Check the path passed to --file",
		"Or run 'rail-inspector changelogs' from inside a Rails checkout",
	)
	e.Err = err
	return e
}

// NoChangelogsFound reports a root directory with no changelog matching glob.
func NoChangelogsFound(root, glob string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("no changelogs matching %q under %s", glob, root),
		"Pass the path of a Rails checkout: rail-inspector changelogs ~/src/rails",
		"Or change changelog_glob in .rail-inspector.yml",
	)
}

// InvalidFormat reports an unsupported --format value.
func InvalidFormat(format string, valid []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid output format: %s", format),
		"rail-inspector changelogs --format <"+strings.Join(valid, "|")+">",
		"Valid formats: "+strings.Join(valid, ", "),
	)
}

// InvalidRule reports an unknown rule passed to --disable.
func InvalidRule(rule string, valid []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown rule: %s", rule),
		"rail-inspector changelogs --disable <rule>",
		"Valid rules: "+strings.Join(valid, ", "),
	)
}

// NotARepository reports that no path was given and the working directory
// is not inside a git repository.
func NotARepository(dir string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("not a git repository: %s", dir),
		"Pass the Rails checkout explicitly: rail-inspector changelogs <RAILS_PATH>",
		"Or run the command from inside the Rails repository",
	)
}

// ConfigParseError wraps a failure to load or validate configuration.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to load config: %s", path),
		"Check the file for YAML syntax errors",
		"Show the effective settings with: rail-inspector config show",
	)
}
