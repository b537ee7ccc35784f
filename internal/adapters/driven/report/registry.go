package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/closeout/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ReportRegistry = (*Registry)(nil)

// Registry maps format names to report writers.
type Registry struct {
	writers map[string]driven.ReportWriter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		writers: make(map[string]driven.ReportWriter),
	}
}

// DefaultRegistry returns a registry holding the text and JSON writers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewTextWriter())
	r.Register(NewJSONWriter())
	return r
}

// Register adds a writer under its Format() name, replacing any previous one.
func (r *Registry) Register(w driven.ReportWriter) {
	r.writers[w.Format()] = w
}

// Get returns the writer for a format. The error lists the registered
// formats.
func (r *Registry) Get(format string) (driven.ReportWriter, error) {
	w, ok := r.writers[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format %q (available: %s)",
			format, strings.Join(r.Formats(), ", "))
	}
	return w, nil
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
