package service

import "errors"

// Failure classes of the registry. Wrapped with %w at the point of failure;
// callers branch with errors.Is.
var (
	// ErrAuthRequired: mutation attempted without an authenticated identity.
	ErrAuthRequired = errors.New("authentication required")

	// ErrValidation: input rejected before any storage call.
	ErrValidation = errors.New("validation failed")

	// ErrDatabase: the insert failed or returned no row.
	ErrDatabase = errors.New("database error")

	// ErrFetch: a read from storage failed.
	ErrFetch = errors.New("fetch failed")

	// ErrUpdate: the status update failed (including unknown id).
	ErrUpdate = errors.New("update failed")

	// ErrDelete: the row deletion failed.
	ErrDelete = errors.New("delete failed")

	// ErrUpload: image upload failed. Inside Create this is downgraded
	// to a logged warning and never returned.
	ErrUpload = errors.New("image upload failed")
)
