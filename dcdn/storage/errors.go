package storage

import "errors"

// Storage engine error types.
var (
	ErrEmptyPayload    = errors.New("file data cannot be empty")
	ErrPayloadTooLarge = errors.New("file size exceeds limit")
	ErrNotFound        = errors.New("file not found")
	ErrAccessDenied    = errors.New("access denied")
	ErrNotOwner        = errors.New("only file owner can delete the file")
)
