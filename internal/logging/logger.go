// Package logging attaches a zerolog logger to a context.
package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels, as aliases for zerolog levels.
const (
	ErrorLevel    = zerolog.ErrorLevel
	WarnLevel     = zerolog.WarnLevel
	InfoLevel     = zerolog.InfoLevel
	DebugLevel    = zerolog.DebugLevel
	DisabledLevel = zerolog.Disabled
)

// Config defines the configuration for logger creation.
type Config struct {
	// Writer receives console output when File is empty.
	Writer io.Writer
	// File, when set, receives JSON logs through a rotating writer.
	File  string
	Level zerolog.Level
	// NoColor disables colour in console output.
	NoColor bool
}

// New returns a context carrying a logger built from config.
func New(ctx context.Context, config Config) (context.Context, error) {
	var writer io.Writer

	switch {
	case config.File != "":
		writer = &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
	case config.Writer != nil:
		writer = zerolog.ConsoleWriter{Out: config.Writer, NoColor: config.NoColor, TimeFormat: "15:04:05"}
	default:
		return nil, fmt.Errorf("logging: either a writer or a log file is required")
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get returns the logger stored in ctx, or a disabled logger if there is none.
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ParseLevel converts a config level name to a zerolog level.
// "disabled" turns logging off.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "disabled" {
		return DisabledLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return DisabledLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
