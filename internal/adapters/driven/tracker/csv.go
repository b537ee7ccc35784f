package tracker

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.TrackerStore = (*Store)(nil)

const bom = "\ufeff"

// Store reads and writes tracker CSV files.
type Store struct{}

// NewStore creates a new CSV tracker store.
func NewStore() *Store {
	return &Store{}
}

// Load parses the tracker at path.
func (s *Store) Load(_ context.Context, path string) (*domain.Tracker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tracker: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Save writes the tracker to path.
func (s *Store) Save(_ context.Context, path string, tracker *domain.Tracker) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating tracker: %w", err)
	}
	if err := Write(f, tracker); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Read parses a tracker from r.
func Read(r io.Reader) (*domain.Tracker, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(bom)); err == nil && string(b) == bom {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", domain.ErrInvalidTracker)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTracker, err)
	}

	columns := canonicalColumns(header)
	if err := requireColumns(columns, domain.ColumnDocumentName, domain.ColumnCategory); err != nil {
		return nil, err
	}

	t := &domain.Tracker{Columns: columns}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTracker, err)
		}

		values := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				values[col] = record[i]
			} else {
				values[col] = ""
			}
		}
		row := domain.TrackerRow{
			Document: documentFrom(values, len(t.Rows)+1),
			Values:   values,
		}
		if len(record) > len(columns) {
			row.Extra = append([]string(nil), record[len(columns):]...)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Write renders the tracker as CSV to w. Cells past the header are
// written after the named columns.
func Write(w io.Writer, t *domain.Tracker) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing tracker header: %w", err)
	}
	for _, row := range t.Rows {
		record := make([]string, len(t.Columns), len(t.Columns)+len(row.Extra))
		for i, col := range t.Columns {
			record[i] = row.Values[col]
		}
		record = append(record, row.Extra...)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing tracker row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// canonicalColumns maps known headers to their canonical spelling.
// Unknown headers are kept as written.
func canonicalColumns(header []string) []string {
	known := make(map[string]string)
	for _, c := range append(domain.InputColumns(), domain.ResultColumns()...) {
		known[strings.ToLower(c)] = c
	}

	columns := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if c, ok := known[strings.ToLower(h)]; ok {
			h = c
		}
		columns[i] = h
	}
	return columns
}

func requireColumns(columns []string, required ...string) error {
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c] = true
	}
	var missing []string
	for _, r := range required {
		if !have[r] {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing column(s) %s", domain.ErrInvalidTracker, strings.Join(missing, ", "))
	}
	return nil
}

// documentFrom builds the document for a row. Rows without a doc number
// are numbered by their position.
func documentFrom(values map[string]string, position int) domain.RequiredDocument {
	id := domain.FormatDocNumber(values[domain.ColumnDocNumber])
	if id == "" {
		id = domain.FormatDocNumber(strconv.Itoa(position))
	}
	return domain.RequiredDocument{
		ID:                 id,
		Name:               strings.TrimSpace(values[domain.ColumnDocumentName]),
		FullName:           strings.TrimSpace(values[domain.ColumnFullName]),
		Category:           strings.TrimSpace(values[domain.ColumnCategory]),
		ContractSection:    strings.TrimSpace(values[domain.ColumnContractSection]),
		RepresentativeFile: strings.TrimSpace(values[domain.ColumnRepresentativeFile]),
	}
}
