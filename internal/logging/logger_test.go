package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(Options{Format: "yaml"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger = NewComponentLogger(logger, "organizer")
	logger.Info("copied file", String("target", "/music/a/b/c.mp3"))

	out := buf.String()
	if !strings.Contains(out, "[organizer]") {
		t.Errorf("missing component in %q", out)
	}
	if !strings.Contains(out, "copied file") {
		t.Errorf("missing message in %q", out)
	}
	if !strings.Contains(out, "- target: /music/a/b/c.mp3") {
		t.Errorf("missing attribute line in %q", out)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("warn line missing, got %q", buf.String())
	}
}

func TestWithContextAppliesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithAttrs(context.Background(), String(FieldRunID, "abc123"))
	WithContext(ctx, logger).Info("hello")

	if !strings.Contains(buf.String(), "run_id: abc123") {
		t.Fatalf("run_id attr missing, got %q", buf.String())
	}
}

func TestWithContextNilLogger(t *testing.T) {
	logger := WithContext(context.Background(), nil)
	// Must not panic and must stay silent.
	logger.Info("ignored")
}
