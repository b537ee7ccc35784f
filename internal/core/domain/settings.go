package domain

// DefaultFuzzyThreshold is the minimum fuzzy percentage accepted.
const DefaultFuzzyThreshold = 70

// ArchiveSettings configures where candidate files live.
type ArchiveSettings struct {
	// Root is the directory holding one folder per category.
	Root string

	// Extensions are the file extensions a resolved document may have.
	Extensions []string

	// InventoryExtensions are the extensions listed by the archive scan.
	InventoryExtensions []string
}

// ReferenceSettings configures the reference table source.
type ReferenceSettings struct {
	// Path to a YAML reference table. Empty uses the embedded table.
	Path string
}

// MatcherSettings tunes the matcher.
type MatcherSettings struct {
	// FuzzyThreshold is the minimum accepted fuzzy percentage, 0-100.
	FuzzyThreshold int

	// Workers is the number of documents matched concurrently.
	Workers int
}

// HistorySettings configures run persistence.
type HistorySettings struct {
	// Enabled records every match run.
	Enabled bool

	// DataDir holds the history database. Empty uses ~/.closeout/data.
	DataDir string
}

// AppSettings holds all closeout settings.
type AppSettings struct {
	Archive   ArchiveSettings
	Reference ReferenceSettings
	Matcher   MatcherSettings
	History   HistorySettings
}

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Archive: ArchiveSettings{
			Extensions:          []string{".pdf"},
			InventoryExtensions: []string{".pdf", ".docx", ".doc", ".xlsx", ".xls"},
		},
		Matcher: MatcherSettings{
			FuzzyThreshold: DefaultFuzzyThreshold,
			Workers:        1,
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}
