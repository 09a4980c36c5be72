package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbsmedya/goexport/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew_CreatesRotatingLogFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.LoggingConfig{
		Level:      "info",
		Format:     "text",
		MaxSizeMB:  10,
		MaxBackups: 5,
	}

	log, err := New(cfg, logDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(log.LogFile()), "goexport_") {
		t.Errorf("unexpected log file name: %s", log.LogFile())
	}

	// Debug messages must reach the file even though console is info level
	log.Debugw("diagnostic detail", "table", "Customers")
	log.Infow("informational")
	_ = log.Sync()

	data, err := os.ReadFile(log.LogFile())
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "diagnostic detail") {
		t.Error("debug message missing from log file")
	}
	if !strings.Contains(content, "informational") {
		t.Error("info message missing from log file")
	}
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	if log == nil {
		t.Fatal("NewDefault returned nil")
	}
	if log.LogFile() != "" {
		t.Errorf("console-only logger should have no log file, got %s", log.LogFile())
	}
	// Should not panic
	log.Info("default logger works")
}

func TestWithTable(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.LoggingConfig{Level: "error", Format: "text", MaxSizeMB: 1, MaxBackups: 1}

	log, err := New(cfg, logDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tl := log.WithTable("Orders")
	tl.Debugw("fetching rows")
	_ = tl.Sync()

	data, _ := os.ReadFile(log.LogFile())
	if !strings.Contains(string(data), "Orders") {
		t.Error("table context missing from log output")
	}
}

func TestWithFields(t *testing.T) {
	log := NewDefault()
	fl := log.WithFields(map[string]interface{}{"format": "csv", "rows": 10})
	if fl == nil {
		t.Fatal("WithFields returned nil")
	}
	fl.Info("fields attached")
}
