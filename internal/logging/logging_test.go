package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/status-plot/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level     string
		expected  zapcore.Level
		expectErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"fatal", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := ParseLevel(tt.level)
			if tt.expectErr {
				if err == nil {
					t.Errorf("ParseLevel(%q) expected error but got none", tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) unexpected error = %v", tt.level, err)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.level, level, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		expectErr bool
		enabled   zapcore.Level
		disabled  zapcore.Level
	}{
		{
			name:     "Defaults to warn console",
			cfg:      config.LoggingConfig{},
			enabled:  zapcore.WarnLevel,
			disabled: zapcore.InfoLevel,
		},
		{
			name:     "JSON info",
			cfg:      config.LoggingConfig{Level: "info", Format: "json"},
			enabled:  zapcore.InfoLevel,
			disabled: zapcore.DebugLevel,
		},
		{
			name:     "Error console",
			cfg:      config.LoggingConfig{Level: "error", Format: "console"},
			enabled:  zapcore.ErrorLevel,
			disabled: zapcore.WarnLevel,
		},
		{
			name:      "Invalid level",
			cfg:       config.LoggingConfig{Level: "loud"},
			expectErr: true,
		},
		{
			name:      "Invalid format",
			cfg:       config.LoggingConfig{Format: "xml"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.expectErr {
				if err == nil {
					t.Errorf("New() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error = %v", err)
			}
			if !logger.Core().Enabled(tt.enabled) {
				t.Errorf("expected level %v to be enabled", tt.enabled)
			}
			if logger.Core().Enabled(tt.disabled) {
				t.Errorf("expected level %v to be disabled", tt.disabled)
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "status-plot.log")

	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path})
	if err != nil {
		t.Fatalf("New() unexpected error = %v", err)
	}
	logger.Info("hello", zap.String("op", "test"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file missing entry: %s", data)
	}
}
