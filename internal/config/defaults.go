package config

import "time"

// DefaultChangelogGlob matches the per-framework changelogs of a Rails checkout.
const DefaultChangelogGlob = "*/CHANGELOG.md"

// GetDefaultConfigTemplate returns a commented config file listing every option.
func GetDefaultConfigTemplate() string {
	return `# rail-inspector configuration

format: text                  # Report format: text | json | sarif
plain: false                  # Disable colour and the progress spinner
jobs: 0                       # Concurrent changelog parsers (0 = one per CPU)

log_level: warn               # debug | info | warn | error | disabled
log_file: ""                  # Rotating log file (empty = stderr)

disabled_rules: []            # Any of: authors, leading-whitespace, trailing-whitespace
changelog_glob: "*/CHANGELOG.md"
watch_debounce: 200ms         # Quiet period before re-inspecting in --watch mode
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"format":         "text",
		"plain":          false,
		"jobs":           0,
		"log_level":      "warn",
		"log_file":       "",
		"disabled_rules": []string{},
		"changelog_glob": DefaultChangelogGlob,
		"watch_debounce": (200 * time.Millisecond).String(),
	}
}
