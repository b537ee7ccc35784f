package report

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
)

// Ensure TextWriter implements the interface.
var _ driven.ReportWriter = (*TextWriter)(nil)

// Result line markers.
const (
	markerMatched   = "OK"
	markerFileGone  = "NF"
	markerUnmatched = "--"
)

// TextWriter renders a plain text report.
type TextWriter struct{}

// NewTextWriter creates a text report writer.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Format returns "text".
func (w *TextWriter) Format() string {
	return "text"
}

// Write renders the summary block followed by one line per document.
func (w *TextWriter) Write(out io.Writer, run *domain.Run) error {
	bw := bufio.NewWriter(out)

	fmt.Fprintln(bw, "DOCUMENT MATCHING REPORT")
	fmt.Fprintln(bw, strings.Repeat("=", 60))
	fmt.Fprintf(bw, "Run:        %s\n", run.ID)
	fmt.Fprintf(bw, "Started:    %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(bw, "Duration:   %s\n", run.Duration().Round(time.Millisecond))
	fmt.Fprintf(bw, "Archive:    %s\n", run.ArchiveRoot)
	fmt.Fprintf(bw, "Reference:  version %d\n", run.ReferenceVersion)
	fmt.Fprintln(bw)

	WriteSummary(bw, run.Summary)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "RESULTS")
	fmt.Fprintln(bw, strings.Repeat("-", 60))
	for i := range run.Results {
		fmt.Fprintln(bw, ResultLine(run.Results[i]))
	}
	return bw.Flush()
}

// WriteSummary writes the summary counts.
func WriteSummary(w io.Writer, s domain.Summary) {
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintf(w, "  Total documents:         %d\n", s.Total)
	fmt.Fprintf(w, "  Mapped with file:        %d (%.1f%%)\n", s.MatchedWithFile, s.Coverage())
	fmt.Fprintf(w, "  Matched, file missing:   %d\n", s.MatchedWithoutFile)
	fmt.Fprintf(w, "  Not matched:             %d\n", s.Unmatched)
	fmt.Fprintf(w, "  High confidence:         %d\n", s.HighConfidence)
	fmt.Fprintf(w, "  Medium confidence:       %d\n", s.MediumConfidence)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "BY OUTCOME")
	for _, o := range domain.AllOutcomes() {
		fmt.Fprintf(w, "  %-26s %d\n", o.Description()+":", s.ByOutcome[o])
	}
}

// ResultLine formats one result, e.g.
// "OK  Doc #007: Manual -> Appendix D1 -> manual.pdf (100%, exact title match)".
func ResultLine(r domain.MatchResult) string {
	head := fmt.Sprintf("Doc #%s: %s", r.Document.ID, displayName(r.Document))
	switch r.Outcome {
	case domain.OutcomeMatched:
		return fmt.Sprintf("%s  %s -> %s%s -> %s (%d%%, %s)",
			markerMatched, head, domain.AppendixPrefix, r.MatchedCode,
			filepath.Base(r.FilePath), r.Confidence, r.Reason)
	case domain.OutcomeFileAbsent:
		return fmt.Sprintf("%s  %s -> %s%s -> no file (%d%%, %s)",
			markerFileGone, head, domain.AppendixPrefix, r.MatchedCode, r.Confidence, r.Reason)
	default:
		return fmt.Sprintf("%s  %s (%s)", markerUnmatched, head, r.Reason)
	}
}

func displayName(d domain.RequiredDocument) string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return name
	}
	return strings.TrimSpace(d.FullName)
}
