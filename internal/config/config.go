// Package config loads rail-inspector settings with koanf.
// Sources are merged with priority: environment variables (RAIL_INSPECTOR_*)
// > project config (.rail-inspector.yml) > user config
// ($XDG_CONFIG_HOME/rail-inspector/config.yml) > defaults. A legacy
// .rail-inspector.json project file is still read, with a warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "RAIL_INSPECTOR_"

// Configuration holds the effective rail-inspector settings.
type Configuration struct {
	// Format selects the report format: text, json or sarif.
	Format string `koanf:"format" validate:"oneof=text json sarif"`
	// Plain disables colour and the spinner.
	Plain bool `koanf:"plain"`
	// Jobs caps concurrent changelog parsing. 0 means one per CPU.
	Jobs int `koanf:"jobs" validate:"min=0,max=256"`

	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error disabled"`
	// LogFile sends logs to a rotating file instead of stderr.
	LogFile string `koanf:"log_file"`

	// DisabledRules lists rule names whose offenses are not reported.
	DisabledRules []string `koanf:"disabled_rules" validate:"dive,oneof=authors leading-whitespace trailing-whitespace"`
	// ChangelogGlob locates changelogs relative to the Rails root.
	ChangelogGlob string `koanf:"changelog_glob" validate:"required"`
	// WatchDebounce delays a re-run in watch mode until events settle.
	WatchDebounce time.Duration `koanf:"watch_debounce" validate:"min=0"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .rail-inspector.yml).
	ProjectConfigPath string
	// UserConfigPath overrides the user config path.
	UserConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings.
	SkipWarnings bool
}

// Load loads configuration using projectConfigPath as the project file.
// An empty path selects the default location.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	loadDefaults(k)

	if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return finalizeConfig(k)
}

func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

func loadUserConfig(k *koanf.Koanf, customPath string) error {
	path := customPath
	if path == "" {
		// Without a resolvable config dir there is simply no user config.
		path, _ = UserConfigPath()
	}
	if !fileExists(path) {
		return nil
	}
	if err := loadYAMLConfig(k, path, "user"); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig prefers the YAML file and falls back to legacy JSON.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	switch {
	case fileExists(yamlPath):
		if err := loadYAMLConfig(k, yamlPath, "project"); err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		if customPath == "" && fileExists(legacyPath) && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n\n", legacyPath, yamlPath)
		}
	case customPath != "":
		return fmt.Errorf("config file not found: %s", customPath)
	case fileExists(legacyPath):
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load legacy project config %s: %w", legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Move its settings to %s.\n\n", ProjectConfigPath())
		}
	}
	return nil
}

func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.DisabledRules = splitList(cfg.DisabledRules)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Map returns the configuration keyed by config file names, suitable for
// printing as YAML.
func (c *Configuration) Map() map[string]any {
	rules := c.DisabledRules
	if rules == nil {
		rules = []string{}
	}
	return map[string]any{
		"format":         c.Format,
		"plain":          c.Plain,
		"jobs":           c.Jobs,
		"log_level":      c.LogLevel,
		"log_file":       c.LogFile,
		"disabled_rules": rules,
		"changelog_glob": c.ChangelogGlob,
		"watch_debounce": c.WatchDebounce.String(),
	}
}

// splitList expands comma-separated items, as delivered by environment
// variables, and drops empty ones.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: RAIL_INSPECTOR_LOG_LEVEL -> log_level
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
