package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/logger"
)

// Matcher maps one RequiredDocument to an appendix code and file.
//
// A Matcher holds only immutable inputs and is safe for concurrent use
// as long as its Archive is.
type Matcher struct {
	table     *domain.ReferenceTable
	archive   driven.Archive
	threshold int
}

// NewMatcher creates a matcher. A threshold of zero or less uses
// domain.DefaultFuzzyThreshold.
func NewMatcher(table *domain.ReferenceTable, archive driven.Archive, threshold int) *Matcher {
	if threshold <= 0 {
		threshold = domain.DefaultFuzzyThreshold
	}
	return &Matcher{
		table:     table,
		archive:   archive,
		threshold: threshold,
	}
}

// candidate is a code accepted by one of the strategies.
type candidate struct {
	entry      domain.ReferenceEntry
	strategy   domain.Strategy
	confidence int
	reason     string
}

// Match produces the result for one document. Every outcome is returned as
// a value; the error is non-nil only when the archive could not be read.
func (m *Matcher) Match(doc domain.RequiredDocument) (domain.MatchResult, error) {
	result := domain.MatchResult{Document: doc}
	category := strings.TrimSpace(doc.Category)

	if category == "" || !m.table.HasCategory(category) {
		result.Outcome = domain.OutcomeUnknownCategory
		result.Reason = fmt.Sprintf("category %q not in reference table", category)
		return result, nil
	}

	exists, err := m.archive.CategoryExists(category)
	if err != nil {
		return result, fmt.Errorf("checking category %q: %w", category, err)
	}
	if !exists {
		result.Outcome = domain.OutcomeMissingArchiveRoot
		result.Reason = fmt.Sprintf("category folder %q not found in archive", category)
		return result, nil
	}

	entries := m.table.Entries(category)
	c, best, ok := m.selectCandidate(doc, entries)
	if !ok {
		result.Outcome = domain.OutcomeNoCandidate
		result.Reason = fmt.Sprintf("best title similarity %d%% below %d%%", best, m.threshold)
		logger.L().Debug("no candidate",
			zap.String("doc", doc.ID),
			zap.String("category", category),
			zap.Int("best", best))
		return result, nil
	}

	result.MatchedCode = c.entry.Code
	result.MatchedTitle = c.entry.Title
	result.Strategy = c.strategy
	result.Confidence = c.confidence

	path, found, err := m.archive.Resolve(category, c.entry.Code)
	if err != nil {
		return result, fmt.Errorf("resolving appendix %s: %w", c.entry.Code, err)
	}
	if !found {
		result.Outcome = domain.OutcomeFileAbsent
		result.Reason = c.reason + "; no file under Appendix " + c.entry.Code
		return result, nil
	}

	result.Outcome = domain.OutcomeMatched
	result.FilePath = path
	result.Reason = c.reason
	logger.L().Debug("document matched",
		zap.String("doc", doc.ID),
		zap.String("code", c.entry.Code),
		zap.String("strategy", string(c.strategy)),
		zap.Int("confidence", c.confidence))
	return result, nil
}

// selectCandidate runs the strategies in fixed order. The first strategy
// that accepts a code wins. When nothing is accepted, best is the highest
// fuzzy percentage seen.
func (m *Matcher) selectCandidate(doc domain.RequiredDocument, entries []domain.ReferenceEntry) (candidate, int, bool) {
	terms := doc.SearchTerms()
	if len(terms) == 0 {
		return candidate{}, 0, false
	}

	if c, ok := matchExact(terms, entries); ok {
		return c, 0, true
	}
	if c, ok := matchVolume(doc.Name, entries); ok {
		return c, 0, true
	}

	c, best := matchFuzzy(terms, entries)
	if best >= m.threshold {
		return c, best, true
	}
	return candidate{}, best, false
}

// matchExact accepts the first entry whose title equals a search term.
func matchExact(terms []string, entries []domain.ReferenceEntry) (candidate, bool) {
	for _, e := range entries {
		for _, term := range terms {
			if titlesEqual(term, e.Title) {
				return candidate{
					entry:      e,
					strategy:   domain.StrategyExact,
					confidence: domain.ExactConfidence,
					reason:     "exact title match",
				}, true
			}
		}
	}
	return candidate{}, false
}

// matchVolume accepts the first entry whose volume token equals the
// document name's token. Only names mentioning a volume or as-built set
// take part.
func matchVolume(name string, entries []domain.ReferenceEntry) (candidate, bool) {
	if !volumeApplicable(name) {
		return candidate{}, false
	}
	want, ok := volumeToken(name)
	if !ok {
		return candidate{}, false
	}
	for _, e := range entries {
		got, ok := volumeToken(e.Title)
		if ok && got == want {
			return candidate{
				entry:      e,
				strategy:   domain.StrategyVolume,
				confidence: domain.VolumeConfidence,
				reason:     "volume " + want + " match",
			}, true
		}
	}
	return candidate{}, false
}

// matchFuzzy returns the single highest-scoring (term, entry) pair.
// Ties keep the first pair seen: entries in code order, name before
// full name.
func matchFuzzy(terms []string, entries []domain.ReferenceEntry) (candidate, int) {
	var c candidate
	best := -1
	for _, e := range entries {
		for _, term := range terms {
			score := similarityPercent(term, e.Title)
			if score > best {
				best = score
				c = candidate{
					entry:      e,
					strategy:   domain.StrategyFuzzy,
					confidence: score,
					reason:     fmt.Sprintf("fuzzy title similarity %d%%", score),
				}
			}
		}
	}
	if best < 0 {
		best = 0
	}
	return c, best
}
