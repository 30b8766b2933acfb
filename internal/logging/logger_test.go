package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{" warn ", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"info", log.InfoLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHelpersNoopBeforeInit(t *testing.T) {
	Close()

	// Must not panic with a nil logger.
	Info("info")
	Debug("debug")
	Warn("warn")
	Error("error")

	if WithPrefix("x") != nil {
		t.Error("WithPrefix should return nil before Init")
	}
}

func TestInitRespectsLevel(t *testing.T) {
	defer Close()

	var buf bytes.Buffer
	Init(&buf, "warn")

	Info("hidden message")
	Warn("visible message", "status", 500)

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "status=500") {
		t.Errorf("key-value pair missing: %q", out)
	}
}

func TestInitFile(t *testing.T) {
	defer Close()

	path := filepath.Join(t.TempDir(), "logs", "atlas.log")
	if err := InitFile(path, "debug"); err != nil {
		t.Fatalf("InitFile() error = %v", err)
	}

	Debug("written to file")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing message: %q", string(data))
	}
}
