// Package organizer drives one audio file at a time through the organize
// pipeline: read tags, validate required fields, build the sanitized target
// path, copy into the library, and optionally remove the source.
//
// Each file is fully independent. A failure produces an Outcome carrying the
// complete ordered error list for that file and never aborts the batch; a
// failed removal after a successful copy is recorded as a warning on an
// otherwise successful Outcome. The loop is strictly sequential, so the only
// shared resource, the destination directory tree, is never written
// concurrently.
package organizer
