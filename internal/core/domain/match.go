package domain

// Outcome classifies a MatchResult. Every result falls into exactly one.
type Outcome string

// Match outcomes.
const (
	// OutcomeMatched means a code was accepted and a file was found.
	OutcomeMatched Outcome = "matched"

	// OutcomeFileAbsent means a code was accepted but no file was found beneath it.
	OutcomeFileAbsent Outcome = "code_matched_file_absent"

	// OutcomeNoCandidate means no strategy cleared its threshold.
	OutcomeNoCandidate Outcome = "no_qualifying_candidate"

	// OutcomeUnknownCategory means the category has no reference entries.
	OutcomeUnknownCategory Outcome = "unknown_category"

	// OutcomeMissingArchiveRoot means the category directory is absent on disk.
	OutcomeMissingArchiveRoot Outcome = "missing_archive_root"
)

// AllOutcomes returns every outcome in report order.
func AllOutcomes() []Outcome {
	return []Outcome{
		OutcomeMatched,
		OutcomeFileAbsent,
		OutcomeNoCandidate,
		OutcomeUnknownCategory,
		OutcomeMissingArchiveRoot,
	}
}

// IsValid returns true if the outcome is recognised.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeMatched, OutcomeFileAbsent, OutcomeNoCandidate,
		OutcomeUnknownCategory, OutcomeMissingArchiveRoot:
		return true
	default:
		return false
	}
}

// HasCode reports whether outcomes of this kind carry a matched code.
func (o Outcome) HasCode() bool {
	return o == OutcomeMatched || o == OutcomeFileAbsent
}

// String returns the string representation.
func (o Outcome) String() string {
	return string(o)
}

// Description returns a human-readable description of the outcome.
func (o Outcome) Description() string {
	switch o {
	case OutcomeMatched:
		return "Matched with file"
	case OutcomeFileAbsent:
		return "Matched but file not found"
	case OutcomeNoCandidate:
		return "No qualifying candidate"
	case OutcomeUnknownCategory:
		return "Unknown category"
	case OutcomeMissingArchiveRoot:
		return "Category folder missing"
	default:
		return "Unknown"
	}
}

// Strategy names the matching strategy that accepted a code.
type Strategy string

// Matching strategies, in the order they are tried.
const (
	StrategyNone   Strategy = ""
	StrategyExact  Strategy = "exact"
	StrategyVolume Strategy = "volume"
	StrategyFuzzy  Strategy = "fuzzy"
)

// Fixed confidences for the non-fuzzy strategies.
const (
	ExactConfidence  = 100
	VolumeConfidence = 95
)

// ConfidenceBand groups confidences the way review reports do.
type ConfidenceBand string

// Confidence bands.
const (
	BandNone   ConfidenceBand = ""
	BandHigh   ConfidenceBand = "high"
	BandMedium ConfidenceBand = "medium"
	BandLow    ConfidenceBand = "low"
)

// BandFor returns the band of a confidence. Zero means no confidence.
func BandFor(confidence int) ConfidenceBand {
	switch {
	case confidence <= 0:
		return BandNone
	case confidence >= 90:
		return BandHigh
	case confidence >= 70:
		return BandMedium
	default:
		return BandLow
	}
}

// MatchResult is the outcome of matching one RequiredDocument.
type MatchResult struct {
	// Document is the input the result was computed for.
	Document RequiredDocument

	// Outcome classifies the result.
	Outcome Outcome

	// Strategy is the strategy that accepted MatchedCode.
	Strategy Strategy

	// MatchedCode is the accepted appendix code. Empty when absent.
	MatchedCode string

	// MatchedTitle is the reference title of MatchedCode.
	MatchedTitle string

	// FilePath is the resolved file. Empty when absent.
	FilePath string

	// Confidence is 0-100. Zero when no code was accepted.
	Confidence int

	// Reason describes which strategy fired or why nothing did.
	Reason string
}

// HasCode reports whether a code was accepted.
func (r MatchResult) HasCode() bool {
	return r.MatchedCode != ""
}

// HasFile reports whether a file path was resolved.
func (r MatchResult) HasFile() bool {
	return r.FilePath != ""
}

// Band returns the confidence band of the result.
func (r MatchResult) Band() ConfidenceBand {
	return BandFor(r.Confidence)
}
