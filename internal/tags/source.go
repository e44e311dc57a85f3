package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
)

type optional struct {
	value   string
	present bool
}

// source is a materialized Source: the underlying file handle is released
// before it is returned, so callers never need to close anything.
type source struct {
	artist optional
	album  optional
	title  optional
}

func (s *source) AlbumArtist() (string, bool) { return s.artist.value, s.artist.present }
func (s *source) Album() (string, bool)       { return s.album.value, s.album.present }
func (s *source) Title() (string, bool)       { return s.title.value, s.title.present }

// ReadFile opens the audio file at path and extracts its tag data. MP3 files
// go through the ID3v2 reader, which distinguishes an absent frame from an
// empty one; everything else goes through the generic container reader. A
// file that cannot be opened or parsed yields a single KindReadFailure error
// and no Source.
func ReadFile(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		return readID3(path)
	}
	return readGeneric(path)
}

// ID3v2.3/2.4 frame IDs for the three required fields.
const (
	frameAlbumArtist = "TPE2"
	frameAlbum       = "TALB"
	frameTitle       = "TIT2"
)

func readID3(path string) (Source, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, readFailure(path, err)
	}
	defer t.Close()

	return &source{
		artist: id3Frame(t, frameAlbumArtist),
		album:  id3Frame(t, frameAlbum),
		title:  id3Frame(t, frameTitle),
	}, nil
}

func id3Frame(t *id3v2.Tag, id string) optional {
	frames := t.GetFrames(id)
	if len(frames) == 0 {
		return optional{}
	}
	text, ok := frames[0].(id3v2.TextFrame)
	if !ok {
		return optional{}
	}
	return optional{value: text.Text, present: true}
}

// rawFieldKeys lists the per-container frame names probed when the accessor
// value is empty: ID3v2.3/2.4 and v2.2 IDs, Vorbis comment names, and MP4
// atom names. A hit means the tag exists but stores an empty string.
var rawFieldKeys = map[Field][]string{
	FieldArtist: {"TPE2", "TP2", "ALBUMARTIST", "albumartist", "album_artist", "aART"},
	FieldAlbum:  {"TALB", "TAL", "ALBUM", "album", "\xa9alb"},
	FieldTitle:  {"TIT2", "TT2", "TITLE", "title", "\xa9nam"},
}

func readGeneric(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, readFailure(path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, readFailure(path, err)
	}

	return &source{
		artist: probe(m, m.AlbumArtist(), rawFieldKeys[FieldArtist]),
		album:  probe(m, m.Album(), rawFieldKeys[FieldAlbum]),
		title:  probe(m, m.Title(), rawFieldKeys[FieldTitle]),
	}, nil
}

func probe(m tag.Metadata, value string, keys []string) optional {
	if value != "" {
		return optional{value: value, present: true}
	}
	raw := m.Raw()
	for _, key := range keys {
		if _, ok := raw[key]; ok {
			return optional{present: true}
		}
	}
	return optional{}
}

func readFailure(path string, err error) error {
	return ValidationError{
		Kind:    KindReadFailure,
		Field:   FieldNone,
		Message: fmt.Sprintf("cannot read tags of %s: %v", filepath.Base(path), err),
	}
}
