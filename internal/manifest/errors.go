package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the manifest file is not valid JSON or YAML
	ErrInvalidFormat = errors.New("manifest must be valid JSON or YAML")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")

	// ErrKeyNotFound indicates a key on the properties path is missing
	ErrKeyNotFound = errors.New("key not found")
)

// KeyLookupError reports the path segment that could not be resolved
type KeyLookupError struct {
	Path    []string
	Segment string
	Reason  string
}

func (e *KeyLookupError) Error() string {
	msg := fmt.Sprintf("key %q not found in path %q", e.Segment, strings.Join(e.Path, "."))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *KeyLookupError) Unwrap() error {
	return ErrKeyNotFound
}
