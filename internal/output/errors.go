package output

import (
	"errors"
	"fmt"
)

// Sentinel errors for the output package
var (
	// ErrMarkerNotFound indicates a region marker is missing from the document
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrDocumentNotFound indicates the document file does not exist
	ErrDocumentNotFound = errors.New("document file not found")

	// ErrOutOfDate indicates check mode found the document would change
	ErrOutOfDate = errors.New("document is out of date")
)

// MarkerNotFoundError names the marker that could not be located
type MarkerNotFoundError struct {
	Marker string
	// AfterStart is set when the end marker was searched for past the start marker
	AfterStart bool
}

func (e *MarkerNotFoundError) Error() string {
	if e.AfterStart {
		return fmt.Sprintf("marker %q not found after start marker", e.Marker)
	}
	return fmt.Sprintf("marker %q not found", e.Marker)
}

func (e *MarkerNotFoundError) Unwrap() error {
	return ErrMarkerNotFound
}
