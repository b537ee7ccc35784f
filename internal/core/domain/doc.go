// Package domain defines the core business entities for closeout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RequiredDocument: A deliverable the contract requires at closeout
//   - ReferenceTable: Ground-truth mapping of (category, code) to title
//   - MatchResult: The outcome of matching one document against the archive
//   - Run: One batch of match results with its summary
//   - ArchiveFile: A document file found while scanning the archive
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
