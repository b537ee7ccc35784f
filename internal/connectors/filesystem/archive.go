package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
)

// Ensure Archive implements the interface.
var _ driven.Archive = (*Archive)(nil)

// Archive resolves appendix codes to files in a local folder tree laid out
// as <root>/<category>/Appendix <code>/Appendix <code>.<sub>/... .
// It only reads the filesystem.
type Archive struct {
	root       string
	extensions []string
}

// NewArchive creates an archive rooted at root. Extensions are matched
// case-insensitively and should include the leading dot.
func NewArchive(root string, extensions []string) *Archive {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	exts := make([]string, 0, len(extensions))
	for _, e := range extensions {
		exts = append(exts, strings.ToLower(e))
	}
	return &Archive{root: root, extensions: exts}
}

// Root returns the archive root directory.
func (a *Archive) Root() string {
	return a.root
}

// CategoryExists reports whether <root>/<category> is a directory.
func (a *Archive) CategoryExists(category string) (bool, error) {
	info, err := os.Stat(filepath.Join(a.root, category))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Resolve descends one "Appendix <code>" folder per dotted level of code.
// When a level is missing the descent stops and the deepest folder
// reached is searched. A missing first level means no file.
func (a *Archive) Resolve(category, code string) (string, bool, error) {
	parts := domain.CodeParts(code)
	if code == "" || parts[0] == "" {
		return "", false, nil
	}

	current, ok, err := findLevel(filepath.Join(a.root, category), parts[0])
	if err != nil || !ok {
		return "", false, err
	}

	for i := 1; i < len(parts); i++ {
		cumulative := strings.Join(parts[:i+1], ".")
		next, ok, err := findLevel(current, cumulative)
		if err != nil {
			return "", false, err
		}
		if !ok {
			break
		}
		current = next
	}

	return a.firstDocument(current)
}

// findLevel looks for "Appendix <code>" in parent, first by exact name and
// then by prefix followed by a separator, e.g. "Appendix A4.1 - Survey".
func findLevel(parent, code string) (string, bool, error) {
	want := domain.AppendixPrefix + code

	entries, err := os.ReadDir(parent)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	for _, e := range entries {
		if e.Name() == want && isDir(parent, e) {
			return filepath.Join(parent, e.Name()), true, nil
		}
	}
	for _, e := range entries {
		if !isHidden(e.Name()) && hasLevelPrefix(e.Name(), want) && isDir(parent, e) {
			return filepath.Join(parent, e.Name()), true, nil
		}
	}
	return "", false, nil
}

// hasLevelPrefix reports whether name starts with want and the code ends
// there. "Appendix E1.A - Notes" has prefix "Appendix E1.A";
// "Appendix E1.AA" and "Appendix E1.A.1" do not.
func hasLevelPrefix(name, want string) bool {
	if !strings.HasPrefix(name, want) {
		return false
	}
	rest := name[len(want):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// firstDocument returns the first qualifying file in dir by name order.
func (a *Archive) firstDocument(dir string) (string, bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	for _, e := range entries {
		name := e.Name()
		if isHidden(name) || isDir(dir, e) {
			continue
		}
		if a.hasExtension(name) {
			return filepath.Join(dir, name), true, nil
		}
	}
	return "", false, nil
}

func (a *Archive) hasExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range a.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// isHidden skips dot files and Office lock files.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~")
}

// isDir follows symlinks, which OneDrive mirrors sometimes use.
func isDir(parent string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(filepath.Join(parent, e.Name()))
	return err == nil && info.IsDir()
}

// Factory opens filesystem archives.
type Factory struct{}

// Ensure Factory implements the interface.
var _ driven.ArchiveFactory = Factory{}

// Open returns an archive rooted at root.
func (Factory) Open(root string, extensions []string) driven.Archive {
	return NewArchive(root, extensions)
}
