package candidate

import "errors"

var (
	// ErrMissingURL rejects a submission without a resolvable profile URL.
	ErrMissingURL = errors.New("missing LinkedIn URL")
	// ErrConflict is a uniqueness violation on something other than the upsert key.
	ErrConflict = errors.New("candidate: unique constraint conflict")
	// ErrStoreUnavailable means the store cannot be reached at all.
	ErrStoreUnavailable = errors.New("candidate: store unavailable")
	// ErrNotFound is returned by Get for unknown URLs.
	ErrNotFound = errors.New("candidate: not found")
)
