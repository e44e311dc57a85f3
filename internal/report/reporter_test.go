package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tunesort/internal/organizer"
	"tunesort/internal/tags"
)

func TestPrintSuccessAlignment(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	files := []string{"short.mp3", "a much longer name.mp3"}
	longest := LongestName(files)

	r.Print("short.mp3", longest, organizer.Outcome{Source: "short.mp3"})
	r.Print("a much longer name.mp3", longest, organizer.Outcome{Source: "a much longer name.mp3"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "Ok") {
			t.Errorf("line %q lacks success marker", line)
		}
	}
	// Status columns line up: both lines have equal total width.
	if len(lines[0]) != len(lines[1]) {
		t.Errorf("status columns misaligned: %q vs %q", lines[0], lines[1])
	}
	// The longest name still gets the fixed gap of dots.
	if !strings.Contains(lines[1], strings.Repeat(".", 10)) {
		t.Errorf("longest line missing fixed dot gap: %q", lines[1])
	}
}

func TestPrintMultipleErrorsIndented(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	outcome := organizer.Outcome{
		Source: "track.mp3",
		Errors: []error{
			tags.ValidationError{Kind: tags.KindMissingField, Field: tags.FieldAlbum, Message: "No album found"},
			tags.ValidationError{Kind: tags.KindMissingField, Field: tags.FieldTitle, Message: "No title found"},
		},
	}
	r.Print("track.mp3", len("track.mp3"), outcome)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "missing tag: No album found") {
		t.Errorf("first line = %q", lines[0])
	}
	wantIndent := len("track.mp3") + 10
	if !strings.HasPrefix(lines[1], strings.Repeat(" ", wantIndent)) {
		t.Errorf("continuation line not indented to column %d: %q", wantIndent, lines[1])
	}
	if strings.TrimSpace(lines[1]) != "missing tag: No title found" {
		t.Errorf("continuation line = %q", lines[1])
	}
}

func TestPrintRemovalWarning(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	outcome := organizer.Outcome{
		Source:         "track.mp3",
		Target:         "/music/a/b/track.mp3",
		RemovalWarning: errors.New("permission denied"),
	}
	r.Print("track.mp3", len("track.mp3"), outcome)

	out := buf.String()
	if !strings.Contains(out, "Ok") {
		t.Errorf("warning downgraded the success marker: %q", out)
	}
	if !strings.Contains(out, "Warning! original file was not removed: permission denied") {
		t.Errorf("missing warning line: %q", out)
	}
}

func TestPrintNoColorOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Print("x.mp3", 5, organizer.Outcome{})
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("ANSI escapes written to non-terminal: %q", buf.String())
	}
}

func TestLongestName(t *testing.T) {
	files := []string{"/a/b/one.mp3", "/long/path/to/xy.mp3", "/c/three.flac"}
	if got := LongestName(files); got != len("three.flac") {
		t.Fatalf("LongestName() = %d, want %d", got, len("three.flac"))
	}
	if got := LongestName(nil); got != 1 {
		t.Fatalf("LongestName(nil) = %d, want 1", got)
	}
}

func TestSummaryCounts(t *testing.T) {
	outcomes := []organizer.Outcome{
		{Source: "a.mp3", Target: "/m/x/y/a.mp3", Tags: tags.RequiredTags{Artist: "X", Album: "Y", Title: "a"}},
		{Source: "b.mp3", Errors: []error{errors.New("boom")}},
	}

	out := Summary(outcomes)
	if !strings.Contains(out, "2 files") {
		t.Errorf("missing totals row in:\n%s", out)
	}
	if !strings.Contains(out, "1 copied") || !strings.Contains(out, "1 failed") {
		t.Errorf("missing counts in:\n%s", out)
	}
	if !strings.Contains(out, "a.mp3") || !strings.Contains(out, "b.mp3") {
		t.Errorf("missing file rows in:\n%s", out)
	}
}
