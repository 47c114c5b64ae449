package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 2, 20, 9, 30, 0, 0, time.UTC)
}

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	l := New(Config{Level: level, Format: format, Output: buf, Component: "registry"})
	l.now = fixedClock
	return l
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, WARN, JSONFormat)

	logger.Debug("mount skipped")
	logger.Info("chart mounted")
	logger.Warn("resize failed")
	logger.Error("backend rejected spec", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines at WARN, got %d: %q", len(lines), buf.String())
	}
	for i, line := range lines {
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("Line %d is not valid JSON: %v", i+1, err)
		}
	}
}

func TestJSONEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, INFO, JSONFormat)

	logger.Info("chart mounted", Fields{"target": "fedRateChart", "series": 2})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("Expected level INFO, got %s", entry.Level)
	}
	if entry.Component != "registry" {
		t.Errorf("Expected component registry, got %s", entry.Component)
	}
	if entry.Timestamp != "2026-02-20T09:30:00Z" {
		t.Errorf("Unexpected timestamp %s", entry.Timestamp)
	}
	if entry.Fields["target"] != "fedRateChart" {
		t.Errorf("Expected target field, got %v", entry.Fields["target"])
	}
	if entry.Fields["series"] != float64(2) {
		t.Errorf("Expected series=2, got %v", entry.Fields["series"])
	}
	if !strings.Contains(entry.Caller, "logger_test.go") {
		t.Errorf("Expected caller in logger_test.go, got %q", entry.Caller)
	}
}

func TestTextEntryIsStable(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, INFO, TextFormat)

	logger.Error("flush failed", errors.New("canvas gone"), Fields{"b": 2, "a": 1})

	out := buf.String()
	for _, want := range []string{"[2026-02-20T09:30:00Z] ERROR", "[registry]", "flush failed", "fields={a=1, b=2}", "error=canvas gone"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestWithMergesFields(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, DEBUG, JSONFormat)
	child := base.With(Fields{"backend": "echarts"}).WithComponent("resize")

	child.Debug("flush", Fields{"instances": 16})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Component != "resize" {
		t.Errorf("Expected component resize, got %s", entry.Component)
	}
	if entry.Fields["backend"] != "echarts" || entry.Fields["instances"] != float64(16) {
		t.Errorf("Expected merged fields, got %v", entry.Fields)
	}
	if base.component != "registry" {
		t.Errorf("Child must not change the parent component")
	}
}

func TestFatalExits(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, INFO, TextFormat)
	code := -1
	logger.exit = func(c int) { code = c }

	logger.Fatal("backend unavailable", errors.New("no renderer"))

	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{"", INFO, false},
		{"warning", WARN, false},
		{"Error", ERROR, false},
		{"fatal", FATAL, false},
		{"loud", INFO, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("JSON"); err != nil || f != JSONFormat {
		t.Errorf("Expected JSONFormat, got %v (%v)", f, err)
	}
	if f, err := ParseFormat("text"); err != nil || f != TextFormat {
		t.Errorf("Expected TextFormat, got %v (%v)", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("Expected error for xml format")
	}
}

func TestDiscardWritesNothing(t *testing.T) {
	l := Discard()
	l.Error("ignored", errors.New("x"))
	if l.Enabled(ERROR) {
		t.Error("Discard logger should not enable ERROR")
	}
}
