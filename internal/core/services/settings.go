package services

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyArchiveRoot         = "archive.root"
	keyArchiveExtensions   = "archive.extensions"
	keyInventoryExtensions = "archive.inventory_extensions"
	keyReferencePath       = "reference.path"
	keyMatcherThreshold    = "matcher.fuzzy_threshold"
	keyMatcherWorkers      = "matcher.workers"
	keyHistoryEnabled      = "history.enabled"
	keyHistoryDataDir      = "history.data_dir"
)

const maxWorkers = 64

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Unset keys take defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Archive: domain.ArchiveSettings{
			Root:                s.configStore.GetString(keyArchiveRoot),
			Extensions:          s.getStringSlice(keyArchiveExtensions, defaults.Archive.Extensions),
			InventoryExtensions: s.getStringSlice(keyInventoryExtensions, defaults.Archive.InventoryExtensions),
		},
		Reference: domain.ReferenceSettings{
			Path: s.configStore.GetString(keyReferencePath),
		},
		Matcher: domain.MatcherSettings{
			FuzzyThreshold: s.getInt(keyMatcherThreshold, defaults.Matcher.FuzzyThreshold),
			Workers:        s.getInt(keyMatcherWorkers, defaults.Matcher.Workers),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			DataDir: s.configStore.GetString(keyHistoryDataDir),
		},
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := ValidateSettings(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyArchiveRoot, settings.Archive.Root},
		{keyArchiveExtensions, settings.Archive.Extensions},
		{keyInventoryExtensions, settings.Archive.InventoryExtensions},
		{keyReferencePath, settings.Reference.Path},
		{keyMatcherThreshold, settings.Matcher.FuzzyThreshold},
		{keyMatcherWorkers, settings.Matcher.Workers},
		{keyHistoryEnabled, settings.History.Enabled},
		{keyHistoryDataDir, settings.History.DataDir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("saving %s: %w", v.key, err)
		}
	}
	return nil
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return ValidateSettings(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateSettings checks value ranges. The archive root may be empty
// here; commands that need it report domain.ErrArchiveRootRequired.
func ValidateSettings(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidSettings)
	}

	m := settings.Matcher
	err := validation.ValidateStruct(&m,
		validation.Field(&m.FuzzyThreshold, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&m.Workers, validation.Required, validation.Min(1), validation.Max(maxWorkers)),
	)
	if err != nil {
		return fmt.Errorf("%w: matcher: %v", domain.ErrInvalidSettings, err)
	}

	a := settings.Archive
	err = validation.ValidateStruct(&a,
		validation.Field(&a.Extensions, validation.Required, validation.Each(validation.Match(extensionPattern))),
		validation.Field(&a.InventoryExtensions, validation.Each(validation.Match(extensionPattern))),
	)
	if err != nil {
		return fmt.Errorf("%w: archive: %v", domain.ErrInvalidSettings, err)
	}
	return nil
}

func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, def bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, def []string) []string {
	v := s.configStore.GetStringSlice(key)
	if len(v) == 0 {
		return def
	}
	return v
}
