package uuidbin

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string is not one of the
	// three accepted textual forms
	ErrInvalidFormat = errors.New("uuidbin: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuidbin: invalid UUID length (expected 16 bytes)")
)
