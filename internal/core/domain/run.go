package domain

import "time"

// Run is one batch invocation of the matcher.
type Run struct {
	// ID is the unique identifier for the run.
	ID string

	// StartedAt is when matching began.
	StartedAt time.Time

	// FinishedAt is when the last result was produced.
	FinishedAt time.Time

	// ArchiveRoot is the archive directory the run searched.
	ArchiveRoot string

	// ReferenceVersion is the version of the reference table used.
	ReferenceVersion int

	// Summary aggregates Results.
	Summary Summary

	// Results holds one entry per input document, in input order.
	// Listing runs may leave this empty.
	Results []MatchResult
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
