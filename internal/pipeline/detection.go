package pipeline

import (
	"context"
	"errors"

	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// DetectionPipe is a specialization whose Process signals an
// UnsupportedFormatError instead of populating the Builder when the
// observed content is not of the expected dialect. Detection pipes may
// still chain — a root detector and a documentation detector — forming a
// short tree that accepts only if every node along a path accepts.
type DetectionPipe interface {
	Pipe
	// Detect inspects batch and returns an UnsupportedFormatError if the
	// content does not match this pipe's expected dialect, nil otherwise.
	Detect(batch DataBatch) error
}

// IsSupportedFormat runs pipe's detection logic (including every successor
// along the accepting path) and reports whether the source matches. Any
// error other than UnsupportedFormatError propagates to the caller instead
// of being treated as "not this format".
func IsSupportedFormat(ctx context.Context, pipe DetectionPipe, batch DataBatch) (bool, error) {
	err := Run(ctx, pipe, batch)
	if err == nil {
		return true, nil
	}
	var unsupported *umlerrors.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return false, nil
	}
	return false, err
}
