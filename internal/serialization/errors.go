package serialization

import "errors"

var (
	// ErrInvalidMagic reports a file that does not start with the weights
	// format magic bytes.
	ErrInvalidMagic = errors.New("serialization: invalid magic bytes")

	// ErrUnsupportedVersion reports a weights file written by a newer or
	// unknown format revision.
	ErrUnsupportedVersion = errors.New("serialization: unsupported format version")

	// ErrCorruptHeader reports a header that does not describe its data
	// section consistently.
	ErrCorruptHeader = errors.New("serialization: corrupt header")
)
