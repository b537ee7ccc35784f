package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	summaryBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1)
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// summaryLines returns label/value pairs for a summary.
func summaryLines(s domain.Summary) [][2]string {
	return [][2]string{
		{"Total documents", fmt.Sprintf("%d", s.Total)},
		{"Mapped with file", fmt.Sprintf("%d (%.1f%%)", s.MatchedWithFile, s.Coverage())},
		{"Matched, file missing", fmt.Sprintf("%d", s.MatchedWithoutFile)},
		{"Not matched", fmt.Sprintf("%d", s.Unmatched)},
		{"High confidence", fmt.Sprintf("%d", s.HighConfidence)},
		{"Medium confidence", fmt.Sprintf("%d", s.MediumConfidence)},
	}
}

// renderSummary formats a run summary, styled when styled is true.
func renderSummary(run *domain.Run, styled bool) string {
	var b strings.Builder
	title := fmt.Sprintf("Run %s", run.ID)
	if styled {
		title = summaryTitleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	for i, line := range summaryLines(run.Summary) {
		value := line[1]
		if styled {
			switch i {
			case 1:
				value = goodStyle.Render(value)
			case 2:
				value = warnStyle.Render(value)
			case 3:
				value = badStyle.Render(value)
			}
		}
		fmt.Fprintf(&b, "%-22s %s\n", line[0]+":", value)
	}

	out := strings.TrimRight(b.String(), "\n")
	if styled {
		return summaryBoxStyle.Render(out)
	}
	return out
}
