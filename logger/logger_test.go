package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Level)
	}
	if cfg.Format != FormatConsole {
		t.Errorf("expected console format, got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected stdout output, got %q", cfg.Output)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"error", false},
		{"verbose", true},
		{"", true},
	}

	for _, tc := range tests {
		cfg := Config{Level: tc.level}
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("level %q: expected error", tc.level)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("level %q: unexpected error: %v", tc.level, err)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := FromZerolog(zerolog.New(&buf)).WithComponent("restclient")

	l.Info("hello")

	if !strings.Contains(buf.String(), `"component":"restclient"`) {
		t.Errorf("expected component field, got %s", buf.String())
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := FromZerolog(zerolog.New(&buf)).WithFields(map[string]any{"method": "GET"})

	l.Debug("request", Fields("status", 200))

	out := buf.String()
	if !strings.Contains(out, `"method":"GET"`) {
		t.Errorf("expected method field, got %s", out)
	}
	if !strings.Contains(out, `"status":200`) {
		t.Errorf("expected status field, got %s", out)
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	// Must not panic or write anywhere.
	l.Debug("dropped")
	l.Error("dropped", Fields("k", "v"))
}

func TestFieldsOddPairs(t *testing.T) {
	m := Fields("a", 1, "dangling")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("expected single pair, got %v", m)
	}
}
