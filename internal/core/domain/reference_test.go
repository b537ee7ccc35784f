package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []ReferenceEntry {
	return []ReferenceEntry{
		{Category: "D - Manuals", Code: "D2", Title: "Construction Manual"},
		{Category: "D - Manuals", Code: "D1", Title: "Bridge Design Manual"},
		{Category: "D - Manuals", Code: "D34.A", Title: "Wide Flange Deck Bulb Tee"},
		{Category: "G - Geotechnical", Code: "G1", Title: "Geotechnical Baseline Report"},
	}
}

func TestNewReferenceTable_SortsByCode(t *testing.T) {
	table := NewReferenceTable(2, testEntries())

	entries := table.Entries("D - Manuals")
	require.Len(t, entries, 3)
	assert.Equal(t, "D1", entries[0].Code)
	assert.Equal(t, "D2", entries[1].Code)
	assert.Equal(t, "D34.A", entries[2].Code)
	assert.Equal(t, 2, table.Version())
	assert.Equal(t, 4, table.Len())
}

func TestNewReferenceTable_LaterDuplicateWins(t *testing.T) {
	table := NewReferenceTable(1, []ReferenceEntry{
		{Category: "F - Forms", Code: "F1", Title: "Old"},
		{Category: "F - Forms", Code: "F1", Title: "Site Inspection Form"},
	})

	title, ok := table.Title("F - Forms", "F1")
	assert.True(t, ok)
	assert.Equal(t, "Site Inspection Form", title)
	assert.Equal(t, 1, table.Len())
}

func TestReferenceTable_HasCategory(t *testing.T) {
	table := NewReferenceTable(1, testEntries())

	assert.True(t, table.HasCategory("D - Manuals"))
	assert.False(t, table.HasCategory("Q - Nonexistent"))
	assert.False(t, table.HasCategory(""))
}

func TestReferenceTable_EntriesReturnsCopy(t *testing.T) {
	table := NewReferenceTable(1, testEntries())

	entries := table.Entries("G - Geotechnical")
	entries[0].Title = "mutated"

	title, _ := table.Title("G - Geotechnical", "G1")
	assert.Equal(t, "Geotechnical Baseline Report", title)
}

func TestReferenceTable_Title_Missing(t *testing.T) {
	table := NewReferenceTable(1, testEntries())

	_, ok := table.Title("D - Manuals", "D99")
	assert.False(t, ok)
}

func TestReferenceTable_Categories(t *testing.T) {
	table := NewReferenceTable(1, testEntries())

	assert.Equal(t, []string{"D - Manuals", "G - Geotechnical"}, table.Categories())
}

func TestCodeParts(t *testing.T) {
	assert.Equal(t, []string{"A-B2", "A", "1"}, CodeParts("A-B2.A.1"))
	assert.Equal(t, []string{"D1"}, CodeParts("D1"))
}
