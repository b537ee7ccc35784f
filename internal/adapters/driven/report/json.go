package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
)

// Ensure JSONWriter implements the interface.
var _ driven.ReportWriter = (*JSONWriter)(nil)

// JSONWriter renders a machine-readable report.
type JSONWriter struct {
	indent string
}

// NewJSONWriter creates a JSON report writer with two-space indentation.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{indent: "  "}
}

// Format returns "json".
func (w *JSONWriter) Format() string {
	return "json"
}

// Write encodes the run as a single JSON document.
func (w *JSONWriter) Write(out io.Writer, run *domain.Run) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", w.indent)
	if err := enc.Encode(newJSONRun(run)); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

type jsonRun struct {
	RunID            string       `json:"run_id"`
	StartedAt        time.Time    `json:"started_at"`
	FinishedAt       time.Time    `json:"finished_at"`
	ArchiveRoot      string       `json:"archive_root"`
	ReferenceVersion int          `json:"reference_version"`
	Summary          jsonSummary  `json:"summary"`
	Results          []jsonResult `json:"results"`
}

type jsonSummary struct {
	Total              int            `json:"total"`
	MatchedWithFile    int            `json:"matched_with_file"`
	MatchedWithoutFile int            `json:"matched_without_file"`
	Unmatched          int            `json:"unmatched"`
	ByOutcome          map[string]int `json:"by_outcome"`
	HighConfidence     int            `json:"high_confidence"`
	MediumConfidence   int            `json:"medium_confidence"`
	Coverage           float64        `json:"coverage_percent"`
}

type jsonResult struct {
	DocID        string `json:"doc_id"`
	Name         string `json:"name"`
	FullName     string `json:"full_name,omitempty"`
	Category     string `json:"category"`
	Outcome      string `json:"outcome"`
	Strategy     string `json:"strategy,omitempty"`
	MatchedCode  string `json:"matched_code,omitempty"`
	MatchedTitle string `json:"matched_title,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
	Confidence   int    `json:"confidence"`
	Band         string `json:"band,omitempty"`
	Reason       string `json:"reason"`
}

func newJSONRun(run *domain.Run) jsonRun {
	byOutcome := make(map[string]int, len(domain.AllOutcomes()))
	for _, o := range domain.AllOutcomes() {
		byOutcome[o.String()] = run.Summary.ByOutcome[o]
	}

	results := make([]jsonResult, 0, len(run.Results))
	for _, r := range run.Results {
		results = append(results, jsonResult{
			DocID:        r.Document.ID,
			Name:         r.Document.Name,
			FullName:     r.Document.FullName,
			Category:     r.Document.Category,
			Outcome:      r.Outcome.String(),
			Strategy:     string(r.Strategy),
			MatchedCode:  r.MatchedCode,
			MatchedTitle: r.MatchedTitle,
			FilePath:     r.FilePath,
			Confidence:   r.Confidence,
			Band:         string(r.Band()),
			Reason:       r.Reason,
		})
	}

	return jsonRun{
		RunID:            run.ID,
		StartedAt:        run.StartedAt.UTC(),
		FinishedAt:       run.FinishedAt.UTC(),
		ArchiveRoot:      run.ArchiveRoot,
		ReferenceVersion: run.ReferenceVersion,
		Summary: jsonSummary{
			Total:              run.Summary.Total,
			MatchedWithFile:    run.Summary.MatchedWithFile,
			MatchedWithoutFile: run.Summary.MatchedWithoutFile,
			Unmatched:          run.Summary.Unmatched,
			ByOutcome:          byOutcome,
			HighConfidence:     run.Summary.HighConfidence,
			MediumConfidence:   run.Summary.MediumConfidence,
			Coverage:           run.Summary.Coverage(),
		},
		Results: results,
	}
}
