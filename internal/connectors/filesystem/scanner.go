package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driven.ArchiveScanner = (*Scanner)(nil)

var appendixPattern = regexp.MustCompile(`(?i)^Appendix\s+([A-Za-z0-9-]+(?:\.[A-Za-z0-9]+)*)`)

// Scanner walks an archive and lists its document files.
type Scanner struct{}

// NewScanner creates a new scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan lists files with the given extensions below every category folder
// of root. Unreadable sub-folders are skipped with a warning; an
// unreadable root is an error.
func (s *Scanner) Scan(ctx context.Context, root string, extensions []string) ([]domain.ArchiveFile, error) {
	archive := NewArchive(root, extensions)

	categories, err := os.ReadDir(archive.Root())
	if err != nil {
		return nil, err
	}

	var files []domain.ArchiveFile
	for _, c := range categories {
		if isHidden(c.Name()) || !isDir(archive.Root(), c) {
			continue
		}
		found, err := archive.scanCategory(ctx, c.Name())
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func (a *Archive) scanCategory(ctx context.Context, category string) ([]domain.ArchiveFile, error) {
	categoryRoot := filepath.Join(a.root, category)
	var files []domain.ArchiveFile

	err := filepath.WalkDir(categoryRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if errors.Is(err, fs.ErrPermission) && path != categoryRoot {
				logger.L().Warn("skipping unreadable folder", zap.String("path", path), zap.Error(err))
				return fs.SkipDir
			}
			return err
		}

		name := d.Name()
		if path != categoryRoot && isHidden(name) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !a.hasExtension(name) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(categoryRoot, path)
		if err != nil {
			return err
		}

		files = append(files, domain.ArchiveFile{
			Category:     category,
			AppendixCode: AppendixCode(rel),
			Name:         name,
			RelativePath: filepath.ToSlash(rel),
			Path:         path,
			Size:         info.Size(),
			ModifiedAt:   info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// AppendixCode returns the code of the deepest "Appendix <code>" folder
// on a relative path, or "" when there is none.
func AppendixCode(rel string) string {
	dirs := strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/")
	code := ""
	for _, dir := range dirs {
		if m := appendixPattern.FindStringSubmatch(dir); m != nil {
			code = m[1]
		}
	}
	return code
}
