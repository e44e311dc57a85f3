// Package tags reads audio metadata and validates the fields required for
// library organization.
//
// A Source exposes optional lookups for album artist, album, and title;
// absence of a frame is distinct from a frame carrying an empty string.
// ReadFile builds a Source from ID3v2 data for MP3 files and falls back to a
// generic container reader for FLAC, M4A, OGG, and WAV. Validate folds the
// three required fields into either a complete RequiredTags record or the
// full ordered list of missing-field errors, so a user sees every defect in
// one run instead of iterating.
package tags
