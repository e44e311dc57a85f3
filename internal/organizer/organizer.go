package organizer

import (
	"context"
	"log/slog"
	"os"

	"tunesort/internal/fileutil"
	"tunesort/internal/logging"
	"tunesort/internal/tags"
)

// Outcome is the result of processing one source file.
type Outcome struct {
	Source string
	Target string
	Tags   tags.RequiredTags

	// Errors is empty on success; otherwise it holds either the ordered
	// missing-field errors, or a single read or copy error.
	Errors []error

	// RemovalWarning is set when the copy succeeded but deleting the
	// source failed. It never turns a success into a failure.
	RemovalWarning error
}

// OK reports whether the file reached its target.
func (o Outcome) OK() bool { return len(o.Errors) == 0 }

// Organizer copies audio files into an artist/album/title tree under Root.
type Organizer struct {
	root         string
	removeSource bool
	logger       *slog.Logger
}

// New constructs an Organizer writing under root. When removeSource is set,
// each successfully copied file's original is deleted.
func New(root string, removeSource bool, logger *slog.Logger) *Organizer {
	return &Organizer{
		root:         root,
		removeSource: removeSource,
		logger:       logging.NewComponentLogger(logger, "organizer"),
	}
}

// Run processes files sequentially. Each file's entire pipeline completes,
// and observe (if non-nil) sees its Outcome, before the next file begins.
// The batch always runs to the end of the list regardless of failures.
func (o *Organizer) Run(ctx context.Context, files []string, observe func(Outcome)) []Outcome {
	outcomes := make([]Outcome, 0, len(files))
	for _, file := range files {
		outcome := o.Process(ctx, file)
		if observe != nil {
			observe(outcome)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// Process runs the per-file state machine: validate, build path, copy,
// optionally remove the source.
func (o *Organizer) Process(ctx context.Context, sourcePath string) Outcome {
	logger := logging.WithContext(ctx, o.logger)
	outcome := Outcome{Source: sourcePath}

	src, err := tags.ReadFile(sourcePath)
	if err != nil {
		logger.Debug("tag read failed", logging.String("source", sourcePath), logging.Error(err))
		outcome.Errors = append(outcome.Errors, err)
		return outcome
	}

	required, verrs := tags.Validate(src)
	if len(verrs) > 0 {
		logger.Debug("tag validation failed",
			logging.String("source", sourcePath),
			logging.Int("missing_fields", len(verrs)),
		)
		for _, verr := range verrs {
			outcome.Errors = append(outcome.Errors, verr)
		}
		return outcome
	}

	outcome.Tags = required
	outcome.Target = BuildTargetPath(sourcePath, o.root, required)

	if err := fileutil.CopyFileInto(sourcePath, outcome.Target); err != nil {
		logger.Debug("copy failed", logging.String("target", outcome.Target), logging.Error(err))
		outcome.Errors = append(outcome.Errors, err)
		return outcome
	}
	logger.Info("copied file",
		logging.String("source", sourcePath),
		logging.String("target", outcome.Target),
	)

	if o.removeSource {
		if err := os.Remove(sourcePath); err != nil {
			outcome.RemovalWarning = err
			logger.Warn("source file not removed", logging.String("source", sourcePath), logging.Error(err))
		}
	}
	return outcome
}
