package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	loxlog "github.com/msto63/lox/foundation/core/log"

	"github.com/msto63/lox/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("lox")

	if cfg.Name != "lox" {
		t.Errorf("Name = %v, want lox", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		log      config.LogConfig
		override string
		verbose  bool
		want     string
	}{
		{"file level", config.LogConfig{Level: "error"}, "", false, "error"},
		{"empty file", config.LogConfig{}, "", false, "warn"},
		{"flag wins", config.LogConfig{Level: "error"}, "info", false, "info"},
		{"verbose wins", config.LogConfig{Level: "error"}, "info", true, "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromConfig("lox", tt.log, tt.override, tt.verbose)
			if got.Level != tt.want {
				t.Errorf("Level = %v, want %v", got.Level, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:   "test",
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})

	if logger.GetLevel() != loxlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want debug", logger.GetLevel())
	}

	logger.Debug("hello", KV("stage", "scan"))
	out := buf.String()
	if !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("output = %q, want JSON message", out)
	}
	if !strings.Contains(out, `"stage":"scan"`) {
		t.Errorf("output = %q, want stage field", out)
	}
}

func TestNewLogger_InvalidValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "loud", Format: "xml", Output: &buf})

	if logger.GetLevel() != loxlog.DefaultLevel() {
		t.Errorf("GetLevel() = %v, want default", logger.GetLevel())
	}
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn, got %q", buf.String())
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var a, b bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "warn",
		Output:            &a,
		AdditionalOutputs: []io.Writer{&b},
	})
	logger.Warn("twice")

	if !strings.Contains(a.String(), "twice") || !strings.Contains(b.String(), "twice") {
		t.Errorf("outputs = %q, %q, want both to contain message", a.String(), b.String())
	}
}

func TestKV(t *testing.T) {
	tests := []struct {
		name string
		in   []interface{}
		want int
	}{
		{"empty", nil, 0},
		{"pairs", []interface{}{"a", 1, "b", 2}, 2},
		{"odd", []interface{}{"a", 1, "b"}, 1},
		{"non-string key", []interface{}{1, "x", "a", 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KV(tt.in...); len(got) != tt.want {
				t.Errorf("len(KV()) = %d, want %d", len(got), tt.want)
			}
		})
	}
}
