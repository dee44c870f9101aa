package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger

	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{name: "Debug level JSON format", level: LevelDebug, format: FormatJSON},
		{name: "Info level JSON format", level: LevelInfo, format: FormatJSON},
		{name: "Warn level JSON format", level: LevelWarn, format: FormatJSON},
		{name: "Error level JSON format", level: LevelError, format: FormatJSON},
		{name: "Info level Text format", level: LevelInfo, format: FormatText},
		{name: "Default level (invalid value)", level: Level(999), format: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
	InitLogger(LevelInfo, FormatText)
}

func TestInitLoggerToRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, LevelWarn, FormatJSON)
	defer InitLogger(LevelInfo, FormatText)

	Info("hidden")
	Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("expected warn message in output: %s", out)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
		t.Fatalf("output is not a JSON line: %v", err)
	}
	ts, ok := entry["time"].(string)
	if !ok {
		t.Fatalf("missing time attribute: %v", entry)
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("time %q is not RFC3339: %v", ts, err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat("JSON"); got != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %v, want FormatJSON", got)
	}
	if got := ParseFormat("text"); got != FormatText {
		t.Errorf("ParseFormat(text) = %v, want FormatText", got)
	}
	if got := ParseFormat("yaml"); got != FormatText {
		t.Errorf("ParseFormat(yaml) = %v, want FormatText", got)
	}
}

func TestOr(t *testing.T) {
	if Or(nil) != GetLogger() {
		t.Error("Or(nil) should return the global logger")
	}
	custom := New(&bytes.Buffer{}, LevelDebug, FormatText)
	if Or(custom) != custom {
		t.Error("Or(custom) should return custom")
	}
}

func TestLoggingFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{name: "Debug", fn: func() { Debug("debug message", "key", "value") }},
		{name: "Info", fn: func() { Info("info message", "key", "value") }},
		{name: "Warn", fn: func() { Warn("warning message", "key", "value") }},
		{name: "Error", fn: func() { Error("error message", "key", "value") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.fn)
			if output == "" {
				t.Error("Expected log output, got empty string")
			}
		})
	}
}

func TestConversionStart(t *testing.T) {
	output := captureLogOutput(func() {
		ConversionStart("ccss2edr", "display.ccss", "display.edr", "tech_type", 3)
	})

	for _, want := range []string{"conversion_start", "ccss2edr", "display.ccss", "display.edr", "tech_type"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q: %s", want, output)
		}
	}
}

func TestConversionDone(t *testing.T) {
	output := captureLogOutput(func() {
		ConversionDone("csv2edr", "panel.edr", 4096, "abc123", 15*time.Millisecond)
	})

	for _, want := range []string{"conversion_done", "panel.edr", "4096", "abc123", "duration_ms"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q: %s", want, output)
		}
	}
}
