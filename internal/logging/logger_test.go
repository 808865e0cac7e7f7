package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"galerija/internal/config"
	"galerija/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	var console bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &console, false)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("gallery built", logging.Int("events", 3))

	content, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "galerija.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "gallery built") {
		t.Fatalf("expected message in log file, got %q", content)
	}
	if !strings.Contains(console.String(), "events=3") {
		t.Fatalf("expected attribute on console, got %q", console.String())
	}
	if !strings.Contains(console.String(), "session_id=") {
		t.Fatalf("expected session id on console, got %q", console.String())
	}
}

func TestConsoleLoggerOmitsSourceForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")
	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestConsoleLoggerComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "scanner").Info("scanned years", logging.Int("years", 2))

	line := buf.String()
	if !strings.Contains(line, "INFO scanner: scanned years") {
		t.Fatalf("unexpected console line %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be rendered as a prefix, got %q", line)
	}
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Console: &buf, SessionID: "abc"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "event folder unreadable", "scan_event_failed")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["level"] != "warn" {
		t.Fatalf("level = %v, want warn", payload["level"])
	}
	if payload[logging.FieldEventType] != "scan_event_failed" {
		t.Fatalf("event_type = %v", payload[logging.FieldEventType])
	}
	for _, key := range []string{logging.FieldErrorHint, logging.FieldImpact, logging.FieldSessionID, "ts"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("expected %q in %v", key, payload)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("discarded")
	logging.WarnWithContext(nil, "ignored", "noop")
}

func TestConsoleLoggerShowsEventTypeOnWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "event folder unreadable", "scan_event_failed",
		logging.String(logging.FieldPath, "/tmp/my folder"))

	line := buf.String()
	if !strings.Contains(line, "WARN [scan_event_failed] event folder unreadable") {
		t.Fatalf("unexpected console line %q", line)
	}
	if !strings.Contains(line, `path="/tmp/my folder"`) {
		t.Fatalf("expected quoted path, got %q", line)
	}
	if strings.Contains(line, "event_type=") {
		t.Fatalf("event_type should be rendered as a tag, got %q", line)
	}
}
