package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/closeout/internal/connectors/filesystem"
	"github.com/custodia-labs/closeout/internal/core/domain"
)

// currentSettings returns stored settings, or defaults when no settings
// service is configured.
func currentSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// expandPath resolves "~/" and file:// prefixes.
func expandPath(p string) string {
	home, _ := os.UserHomeDir()
	return filesystem.ResolveRoot(p, home)
}

// parseExtensions splits a comma-separated list and ensures a leading dot.
func parseExtensions(raw string) []string {
	var exts []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		exts = append(exts, part)
	}
	return exts
}
