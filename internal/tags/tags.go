package tags

// Field identifies one of the metadata fields required for organization.
type Field string

const (
	FieldNone   Field = ""
	FieldArtist Field = "artist"
	FieldAlbum  Field = "album"
	FieldTitle  Field = "title"
)

// Kind classifies a validation failure.
type Kind int

const (
	// KindMissingField marks a required tag that is absent from the source.
	KindMissingField Kind = iota
	// KindReadFailure marks a source that could not be opened or parsed.
	KindReadFailure
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing tag"
	case KindReadFailure:
		return "read failure"
	default:
		return "unknown"
	}
}

// ValidationError describes a single defect found while extracting tags.
type ValidationError struct {
	Kind    Kind
	Field   Field
	Message string
}

func (e ValidationError) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// RequiredTags holds the three fields a target path is built from. It is
// constructed only when all three tags are present; the raw values may still
// be empty strings if the source stored empty frames.
type RequiredTags struct {
	Artist string
	Album  string
	Title  string
}

// Source is one file's tag data. Lookups return the stored value and whether
// the tag exists at all; an empty value with true means the frame is present
// but empty.
type Source interface {
	AlbumArtist() (string, bool)
	Album() (string, bool)
	Title() (string, bool)
}
