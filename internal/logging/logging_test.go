package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{"error", log.ErrorLevel},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, err := New(&bytes.Buffer{}, Options{Level: tc.level})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if logger.GetLevel() != tc.want {
				t.Errorf("level = %v, expected %v", logger.GetLevel(), tc.want)
			}
		})
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestAutoFormatUsesLogfmtOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Format: "auto"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("level finished", "status", "won")

	out := buf.String()
	if !strings.Contains(out, "level=info") || !strings.Contains(out, "status=won") {
		t.Errorf("expected logfmt output, got %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Format: "json", Prefix: "runner"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Warn("retry", "attempt", 2)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "retry" || !strings.HasPrefix(fmt.Sprint(entry["prefix"]), "runner") {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
}
