package reference

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
)

//go:embed default.yaml
var defaultTable []byte

// Ensure Source implements the interface.
var _ driven.ReferenceSource = (*Source)(nil)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9]+)*$`)

// file is the on-disk layout of a reference table.
type file struct {
	Version    int                `yaml:"version" json:"version"`
	Categories map[string][]entry `yaml:"categories" json:"categories"`
}

type entry struct {
	Code  string `yaml:"code" json:"code"`
	Title string `yaml:"title" json:"title"`
}

// Validate implements validation.Validatable.
func (e entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Code, validation.Required, validation.Match(codePattern)),
		validation.Field(&e.Title, validation.Required),
	)
}

// Source reads reference tables from YAML files.
type Source struct{}

// NewSource creates a new YAML reference source.
func NewSource() *Source {
	return &Source{}
}

// Load reads the table at path, or the embedded table when path is empty.
func (s *Source) Load(_ context.Context, path string) (*domain.ReferenceTable, error) {
	if path == "" {
		return Parse(defaultTable)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference table: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded reference table.
func Default() (*domain.ReferenceTable, error) {
	return Parse(defaultTable)
}

// Parse decodes and validates a reference table.
func Parse(data []byte) (*domain.ReferenceTable, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidReference, err)
	}
	f.normalise()
	if err := f.validate(); err != nil {
		return nil, err
	}

	var entries []domain.ReferenceEntry
	for category, list := range f.Categories {
		for _, e := range list {
			entries = append(entries, domain.ReferenceEntry{
				Category: category,
				Code:     e.Code,
				Title:    e.Title,
			})
		}
	}
	return domain.NewReferenceTable(f.Version, entries), nil
}

// normalise trims category names, codes and titles. Categories whose
// names differ only by surrounding space are merged in key order.
func (f *file) normalise() {
	if f.Categories == nil {
		return
	}
	keys := make([]string, 0, len(f.Categories))
	for k := range f.Categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string][]entry, len(keys))
	for _, k := range keys {
		name := strings.TrimSpace(k)
		list := out[name]
		for _, e := range f.Categories[k] {
			list = append(list, entry{
				Code:  strings.TrimSpace(e.Code),
				Title: strings.TrimSpace(e.Title),
			})
		}
		out[name] = list
	}
	f.Categories = out
}

// validate checks the version, every entry, and code uniqueness per category.
func (f *file) validate() error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Version, validation.Required, validation.Min(1)),
		validation.Field(&f.Categories, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidReference, err)
	}

	categories := make([]string, 0, len(f.Categories))
	for c := range f.Categories {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, category := range categories {
		if category == "" {
			return fmt.Errorf("%w: empty category name", domain.ErrInvalidReference)
		}
		list := f.Categories[category]
		if err := validation.Validate(list); err != nil {
			return fmt.Errorf("%w: category %q: %v", domain.ErrInvalidReference, category, err)
		}
		seen := make(map[string]bool, len(list))
		for _, e := range list {
			if seen[e.Code] {
				return fmt.Errorf("%w: category %q: duplicate code %s", domain.ErrInvalidReference, category, e.Code)
			}
			seen[e.Code] = true
		}
	}
	return nil
}
