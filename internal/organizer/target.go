package organizer

import (
	"path/filepath"

	"tunesort/internal/tags"
	"tunesort/internal/textutil"
)

// BuildTargetPath computes root/artist/album/title with every tag value
// sanitized into a path segment. If the source filename carries an extension
// it is appended verbatim; the extension is trusted as-is from the original
// name. No uniqueness check is performed, so two sources that sanitize to the
// same target silently map to one file.
func BuildTargetPath(sourcePath, root string, t tags.RequiredTags) string {
	filename := textutil.SanitizeSegment(t.Title)
	base := filepath.Base(sourcePath)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		filename += ext
	}
	return filepath.Join(
		root,
		textutil.SanitizeSegment(t.Artist),
		textutil.SanitizeSegment(t.Album),
		filename,
	)
}
