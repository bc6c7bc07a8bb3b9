package usecase

import "errors"

// Sentinel errors shared by services and repositories. Handlers translate
// them to HTTP status codes with errors.Is.
var (
	// ErrNotFound means a referenced book or rating does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument means an input failed validation before any write.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict means storage rejected a write on a uniqueness constraint,
	// e.g. a duplicate ISBN.
	ErrConflict = errors.New("conflict")
)
