package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Match outcomes (unknown category, missing archive root, no candidate,
// file absent) are never errors. They are reported on MatchResult.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidReference indicates the reference table failed validation.
	ErrInvalidReference = errors.New("invalid reference table")

	// ErrInvalidTracker indicates the tracker file is missing required columns.
	ErrInvalidTracker = errors.New("invalid tracker")

	// ErrArchiveRootRequired indicates no archive root was configured.
	ErrArchiveRootRequired = errors.New("archive root not configured")

	// ErrInvalidSettings indicates configured values are out of range.
	ErrInvalidSettings = errors.New("invalid settings")
)
