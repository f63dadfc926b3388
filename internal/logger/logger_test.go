package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production", "info")

	log.Debug().Msg("hidden")
	log.Info().Str("course", "html").Msg("Course created")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line at info level, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if entry["severity"] != "info" || entry["course"] != "html" || entry["app"] != "quizhub" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["time"].(float64); !ok {
		t.Fatalf("expected unix timestamp, got %v", entry["time"])
	}
}

func TestNewWithWriterDefaultsToDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production", "nonsense")
	log.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}

func TestNewWithWriterDevelopmentIsConsole(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "development", "")
	log.Info().Msg("Server starting")
	if json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Fatalf("expected console output, got JSON %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Server starting") {
		t.Fatalf("missing message in %q", buf.String())
	}
}
