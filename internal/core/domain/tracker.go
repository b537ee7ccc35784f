package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// Tracker column names.
const (
	ColumnDocNumber          = "Doc_Number"
	ColumnDocumentName       = "Document_Name"
	ColumnFullName           = "Full_Name"
	ColumnCategory           = "Category"
	ColumnContractSection    = "Contract_Section"
	ColumnRepresentativeFile = "Representative_File"
	ColumnFilePath           = "File_Path"
	ColumnFilesCount         = "Files_Count"
	ColumnAppendixCode       = "Appendix_Code"
	ColumnMatchConfidence    = "Match_Confidence"
	ColumnMatchOutcome       = "Match_Outcome"
	ColumnMatchReason        = "Match_Reason"
)

// InputColumns returns the columns a tracker may carry on input.
func InputColumns() []string {
	return []string{
		ColumnDocNumber,
		ColumnDocumentName,
		ColumnFullName,
		ColumnCategory,
		ColumnContractSection,
		ColumnRepresentativeFile,
		ColumnFilePath,
		ColumnFilesCount,
	}
}

// ResultColumns returns the columns written back after matching.
func ResultColumns() []string {
	return []string{
		ColumnRepresentativeFile,
		ColumnFilePath,
		ColumnFilesCount,
		ColumnAppendixCode,
		ColumnMatchConfidence,
		ColumnMatchOutcome,
		ColumnMatchReason,
	}
}

// DocumentFilter selects which tracker rows are matched.
type DocumentFilter struct {
	// ContractOnly keeps documents from contract sections 1 through 8.
	ContractOnly bool

	// OnlyMissing skips documents that already have a representative file.
	OnlyMissing bool
}

// Keep reports whether d passes the filter.
func (f DocumentFilter) Keep(d RequiredDocument) bool {
	if f.ContractOnly && !d.IsContractDocument() {
		return false
	}
	if f.OnlyMissing && d.HasFile() {
		return false
	}
	return true
}

// TrackerRow is one row of the tracker.
type TrackerRow struct {
	// Document is parsed from the row's cells.
	Document RequiredDocument

	// Values holds every cell keyed by column name.
	Values map[string]string

	// Extra holds cells past the last header column, in order.
	Extra []string
}

// Tracker is the document tracker spreadsheet.
// Rows that are not matched are carried through unchanged.
type Tracker struct {
	// Columns lists column names in file order.
	Columns []string

	// Rows holds the data rows in file order.
	Rows []TrackerRow
}

// Select returns the indexes of rows that pass the filter.
func (t *Tracker) Select(f DocumentFilter) []int {
	var rows []int
	for i := range t.Rows {
		if f.Keep(t.Rows[i].Document) {
			rows = append(rows, i)
		}
	}
	return rows
}

// Documents returns the documents of the given rows, in order.
func (t *Tracker) Documents(rows []int) []RequiredDocument {
	docs := make([]RequiredDocument, 0, len(rows))
	for _, i := range rows {
		if i >= 0 && i < len(t.Rows) {
			docs = append(docs, t.Rows[i].Document)
		}
	}
	return docs
}

// Apply writes a match result into a row and adds any missing result columns.
// Representative file cells are only touched when a file was resolved.
func (t *Tracker) Apply(row int, r MatchResult) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("%w: tracker row %d out of range", ErrInvalidInput, row)
	}
	t.ensureColumns(ResultColumns())

	tr := &t.Rows[row]
	if tr.Values == nil {
		tr.Values = make(map[string]string)
	}
	if r.HasFile() {
		tr.Values[ColumnRepresentativeFile] = filepath.Base(r.FilePath)
		tr.Values[ColumnFilePath] = r.FilePath
		tr.Values[ColumnFilesCount] = "1"
		tr.Document.RepresentativeFile = filepath.Base(r.FilePath)
	}
	tr.Values[ColumnAppendixCode] = r.MatchedCode
	tr.Values[ColumnMatchConfidence] = ""
	if r.HasCode() {
		tr.Values[ColumnMatchConfidence] = strconv.Itoa(r.Confidence)
	}
	tr.Values[ColumnMatchOutcome] = r.Outcome.String()
	tr.Values[ColumnMatchReason] = r.Reason
	return nil
}

func (t *Tracker) ensureColumns(names []string) {
	have := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		have[c] = true
	}
	for _, n := range names {
		if !have[n] {
			t.Columns = append(t.Columns, n)
			have[n] = true
		}
	}
}
