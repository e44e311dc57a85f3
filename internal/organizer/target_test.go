package organizer

import (
	"path/filepath"
	"testing"

	"tunesort/internal/tags"
)

func TestBuildTargetPath(t *testing.T) {
	tests := []struct {
		name   string
		source string
		root   string
		tags   tags.RequiredTags
		want   string
	}{
		{
			name:   "forbidden characters and reserved title",
			source: "track.mp3",
			root:   "/music",
			tags:   tags.RequiredTags{Artist: "AC/DC", Album: "Who Made Who", Title: "CON"},
			want:   "/music/AC_DC/Who Made Who/_.mp3",
		},
		{
			name:   "reserved device name keeps extension",
			source: "/incoming/09 - something.mp3",
			root:   "/library",
			tags:   tags.RequiredTags{Artist: "a", Album: "b", Title: "NUL"},
			want:   "/library/a/b/_.mp3",
		},
		{
			name:   "no extension on source",
			source: "/incoming/track",
			root:   "/music",
			tags:   tags.RequiredTags{Artist: "a", Album: "b", Title: "c"},
			want:   "/music/a/b/c",
		},
		{
			name:   "extension is trusted verbatim",
			source: "track.MP3",
			root:   "/music",
			tags:   tags.RequiredTags{Artist: "a", Album: "b", Title: "c"},
			want:   "/music/a/b/c.MP3",
		},
		{
			name:   "dotfile source has no extension",
			source: "/incoming/.hidden",
			root:   "/music",
			tags:   tags.RequiredTags{Artist: "a", Album: "b", Title: "c"},
			want:   "/music/a/b/c",
		},
		{
			name:   "title with dot keeps remainder",
			source: "x.flac",
			root:   "/music",
			tags:   tags.RequiredTags{Artist: "a", Album: "b", Title: "CON.live"},
			want:   "/music/a/b/_.live.flac",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildTargetPath(tt.source, tt.root, tt.tags)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("BuildTargetPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
