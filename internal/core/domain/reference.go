package domain

import (
	"sort"
	"strings"
)

// AppendixPrefix is the folder name prefix every archive level uses.
const AppendixPrefix = "Appendix "

// ReferenceEntry registers the canonical title of one appendix code.
type ReferenceEntry struct {
	// Category is the top-level grouping the code belongs to.
	Category string

	// Code is the dotted appendix code, e.g. "D34.A".
	Code string

	// Title is the canonical document title for the code.
	Title string
}

// CodeParts splits a dotted appendix code into its levels.
// "A-B2.A.1" becomes ["A-B2", "A", "1"].
func CodeParts(code string) []string {
	return strings.Split(code, ".")
}

// ReferenceTable is the ground-truth mapping from (category, code) to title.
// It is immutable once built. Entries inside a category are kept in byte
// order of their code, which is the tie-break order used by the matcher.
type ReferenceTable struct {
	version    int
	categories map[string][]ReferenceEntry
}

// NewReferenceTable builds a table from entries. Later duplicates of the
// same (category, code) pair replace earlier ones.
func NewReferenceTable(version int, entries []ReferenceEntry) *ReferenceTable {
	byKey := make(map[string]map[string]ReferenceEntry)
	for _, e := range entries {
		codes, ok := byKey[e.Category]
		if !ok {
			codes = make(map[string]ReferenceEntry)
			byKey[e.Category] = codes
		}
		codes[e.Code] = e
	}

	t := &ReferenceTable{
		version:    version,
		categories: make(map[string][]ReferenceEntry, len(byKey)),
	}
	for category, codes := range byKey {
		list := make([]ReferenceEntry, 0, len(codes))
		for _, e := range codes {
			list = append(list, e)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
		t.categories[category] = list
	}
	return t
}

// Version returns the configuration version the table was loaded from.
func (t *ReferenceTable) Version() int {
	return t.version
}

// HasCategory reports whether the category has at least one entry.
func (t *ReferenceTable) HasCategory(category string) bool {
	return len(t.categories[category]) > 0
}

// Entries returns the entries of a category in code order.
// The returned slice is a copy.
func (t *ReferenceTable) Entries(category string) []ReferenceEntry {
	list := t.categories[category]
	out := make([]ReferenceEntry, len(list))
	copy(out, list)
	return out
}

// Title looks up the title registered for a code.
func (t *ReferenceTable) Title(category, code string) (string, bool) {
	for _, e := range t.categories[category] {
		if e.Code == code {
			return e.Title, true
		}
	}
	return "", false
}

// Categories returns all category names in sorted order.
func (t *ReferenceTable) Categories() []string {
	names := make([]string, 0, len(t.categories))
	for name := range t.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the total number of entries across all categories.
func (t *ReferenceTable) Len() int {
	n := 0
	for _, list := range t.categories {
		n += len(list)
	}
	return n
}
