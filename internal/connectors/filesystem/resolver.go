package filesystem

import (
	"path/filepath"
	"strings"
)

// ResolveRoot converts an archive location to a local directory path.
// Handles file:// URIs, bare paths and a leading "~/" for the home directory.
func ResolveRoot(uri, home string) string {
	path := strings.TrimPrefix(uri, "file://")
	if home != "" && (path == "~" || strings.HasPrefix(path, "~/")) {
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
