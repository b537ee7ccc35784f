package driven

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// Archive gives read-only access to the appendix folder tree.
//
// Missing directories are normal outcomes, reported through the boolean
// results. Errors are reserved for exceptional conditions such as a
// permission failure on a directory that exists.
type Archive interface {
	// Root returns the directory holding one folder per category.
	Root() string

	// CategoryExists reports whether the category folder exists.
	CategoryExists(category string) (bool, error)

	// Resolve descends the "Appendix <code>" folders of a code and returns
	// the first qualifying file in the deepest folder reached.
	Resolve(category, code string) (path string, found bool, err error)
}

// ArchiveFactory opens an Archive rooted at a directory.
type ArchiveFactory interface {
	// Open returns an archive that resolves files with the given extensions.
	Open(root string, extensions []string) Archive
}

// ArchiveScanner lists document files under an archive root.
type ArchiveScanner interface {
	// Scan walks every category folder below root.
	Scan(ctx context.Context, root string, extensions []string) ([]domain.ArchiveFile, error)
}
