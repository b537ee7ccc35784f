package services

import (
	"regexp"
	"strings"
)

// The token may run into trailing text: "Volume 01_final" yields "01".
var volumePattern = regexp.MustCompile(`(?i)\bvolume\s+(\d+[a-z]?)`)

// volumeApplicable reports whether the volume strategy may run for a name.
func volumeApplicable(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "volume") || strings.Contains(lower, "as-built")
}

// volumeToken extracts the "<number><letter>" token following "Volume".
// "As-Built Plans Volume 14a" yields "14a".
func volumeToken(s string) (string, bool) {
	m := volumePattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}
