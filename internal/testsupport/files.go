package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// WriteTaggedFile authors an MP3-style file at path carrying an ID3v2 tag
// with the given text frames, followed by payload bytes standing in for
// audio data. Frame keys are raw ID3v2.4 IDs (TPE2, TALB, TIT2, ...).
func WriteTaggedFile(t testing.TB, path string, frames map[string]string, payload string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	id3 := id3v2.NewEmptyTag()
	for id, value := range frames {
		id3.AddTextFrame(id, id3v2.EncodingUTF8, value)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if _, err := id3.WriteTo(f); err != nil {
		t.Fatalf("write tag to %s: %v", path, err)
	}
	if payload != "" {
		if _, err := f.WriteString(payload); err != nil {
			t.Fatalf("write payload to %s: %v", path, err)
		}
	}
}

// TrackFrames builds the frame set for a fully tagged track.
func TrackFrames(artist, album, title string) map[string]string {
	return map[string]string{
		"TPE2": artist,
		"TALB": album,
		"TIT2": title,
	}
}
