package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"WARNING", log.WarnLevel},
		{"error", log.ErrorLevel},
		{" error ", log.ErrorLevel},
		{"unknown", log.WarnLevel}, // Default
		{"", log.WarnLevel},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: log.WarnLevel, Output: &buf, Prefix: "test"})

	logger.Debug("hidden")
	logger.Warn("configuration miss", "option", "width")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered")
	}
	if !strings.Contains(out, "configuration miss") || !strings.Contains(out, "option=width") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "test") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()
	if cfg.Level != log.WarnLevel {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Prefix != "edconf" {
		t.Errorf("Prefix = %q, want 'edconf'", cfg.Prefix)
	}
}
