package app

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLogLevel parses a level name. Unknown names yield log.WarnLevel so
// configuration misses stay visible.
func ParseLogLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum level written.
	Level log.Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is prepended to every line.
	Prefix string
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  log.WarnLevel,
		Output: os.Stderr,
		Prefix: "edconf",
	}
}

// NewLogger creates a logger from cfg.
func NewLogger(cfg LoggerConfig) *log.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return log.NewWithOptions(cfg.Output, log.Options{
		Level:  cfg.Level,
		Prefix: cfg.Prefix,
	})
}
