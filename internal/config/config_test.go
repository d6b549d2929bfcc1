package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdirTemp runs the test from an empty directory so no stray config.yaml is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.GinMode != "release" {
		t.Errorf("Server.GinMode = %q, want %q", cfg.Server.GinMode, "release")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.App.DecimalPlaces != 4 {
		t.Errorf("App.DecimalPlaces = %d, want 4", cfg.App.DecimalPlaces)
	}
	if addr := cfg.GetServerAddr(); addr != ":8080" {
		t.Errorf("GetServerAddr() = %q, want %q", addr, ":8080")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("UNIT_CONVERTER_SERVER_PORT", "9090")
	t.Setenv("UNIT_CONVERTER_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	content := "server:\n  port: 7070\nlog:\n  format: json\napp:\n  decimalPlaces: 2\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.App.DecimalPlaces != 2 {
		t.Errorf("App.DecimalPlaces = %d, want 2", cfg.App.DecimalPlaces)
	}
}

func TestLoad_NegativeDecimalPlaces(t *testing.T) {
	chdirTemp(t)
	t.Setenv("UNIT_CONVERTER_APP_DECIMALPLACES", "-1")

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want error for negative decimal places")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := ParseLevel(tt.input); result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewLoggerTo(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		contains string
	}{
		{"text format", Config{Log: LogConfig{Level: "info", Format: "text"}}, "msg=hello"},
		{"json format", Config{Log: LogConfig{Level: "info", Format: "json"}}, `"msg":"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := tt.cfg.NewLoggerTo(&buf)
			logger.Info("hello")
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("log output %q does not contain %q", buf.String(), tt.contains)
			}
		})
	}

	cfg := Config{Log: LogConfig{Level: "warn"}}
	logger := cfg.NewLoggerTo(&bytes.Buffer{})
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
}
