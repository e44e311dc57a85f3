package tags

// Validate extracts the required fields from src in artist, album, title
// order. It does not stop at the first absent field: the accumulator tracks
// either all values collected so far or all errors so far, and once an error
// is recorded further successes are discarded. The returned error slice is
// nil exactly when all three fields are present.
func Validate(src Source) (RequiredTags, []ValidationError) {
	checks := []struct {
		field   Field
		message string
		lookup  func() (string, bool)
	}{
		{FieldArtist, "No album artist found", src.AlbumArtist},
		{FieldAlbum, "No album found", src.Album},
		{FieldTitle, "No title found", src.Title},
	}

	values := make([]string, 0, len(checks))
	var errs []ValidationError
	for _, check := range checks {
		value, present := check.lookup()
		if !present {
			errs = append(errs, ValidationError{
				Kind:    KindMissingField,
				Field:   check.field,
				Message: check.message,
			})
			continue
		}
		if len(errs) == 0 {
			values = append(values, value)
		}
	}

	if len(errs) > 0 {
		return RequiredTags{}, errs
	}
	return RequiredTags{Artist: values[0], Album: values[1], Title: values[2]}, nil
}
