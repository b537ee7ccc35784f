package domain

import "time"

// ArchiveFile is a document file found while scanning the archive.
type ArchiveFile struct {
	// Category is the top-level category folder the file lives in.
	Category string

	// AppendixCode is the deepest "Appendix <code>" found on the path.
	AppendixCode string

	// Name is the file name.
	Name string

	// RelativePath is the path relative to the category folder.
	RelativePath string

	// Path is the absolute path.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModifiedAt is the last modification time.
	ModifiedAt time.Time
}

// SizeMB returns the size in mebibytes.
func (f ArchiveFile) SizeMB() float64 {
	return float64(f.Size) / (1024 * 1024)
}
