package domain

// Summary aggregates the outcomes of a batch.
type Summary struct {
	Total              int
	MatchedWithFile    int
	MatchedWithoutFile int
	Unmatched          int

	// ByOutcome counts results per outcome.
	ByOutcome map[Outcome]int

	// HighConfidence and MediumConfidence count accepted codes per band.
	HighConfidence   int
	MediumConfidence int
}

// Add records one result.
func (s *Summary) Add(r MatchResult) {
	if s.ByOutcome == nil {
		s.ByOutcome = make(map[Outcome]int)
	}
	s.Total++
	s.ByOutcome[r.Outcome]++

	switch r.Outcome {
	case OutcomeMatched:
		s.MatchedWithFile++
	case OutcomeFileAbsent:
		s.MatchedWithoutFile++
	default:
		s.Unmatched++
	}

	switch r.Band() {
	case BandHigh:
		s.HighConfidence++
	case BandMedium:
		s.MediumConfidence++
	}
}

// Summarise builds a Summary over results.
func Summarise(results []MatchResult) Summary {
	s := Summary{ByOutcome: make(map[Outcome]int)}
	for i := range results {
		s.Add(results[i])
	}
	return s
}

// Coverage returns the share of documents resolved to a file, 0-100.
func (s Summary) Coverage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.MatchedWithFile) * 100 / float64(s.Total)
}
