package scanner

import "errors"

var (
	// ErrEmptyInput is returned for a file with zero bytes.
	ErrEmptyInput = errors.New("asset file is empty")
	// ErrDecodeFailure is returned when a file cannot be read or decoded.
	ErrDecodeFailure = errors.New("failed to decode asset file")
	// ErrNoInputFound is returned when no candidate files match the input path.
	ErrNoInputFound = errors.New("no asset files found")
)
