package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RequiredDocument identifies one deliverable the project must produce.
type RequiredDocument struct {
	// ID is the stable identifier, usually a three-digit sequence number.
	ID string

	// Name is the short label.
	Name string

	// FullName is an optional longer or alternate label.
	FullName string

	// Category is the top-level grouping, e.g. "D - Manuals".
	// It decides which subtree of the archive is searched.
	Category string

	// ContractSection is the contract section the requirement comes from.
	ContractSection string

	// RepresentativeFile is the file already recorded for the document, if any.
	RepresentativeFile string
}

// SearchTerms returns the non-empty labels to compare against reference
// titles. Name comes first so it wins ties against FullName.
func (d RequiredDocument) SearchTerms() []string {
	terms := make([]string, 0, 2)
	name := strings.TrimSpace(d.Name)
	full := strings.TrimSpace(d.FullName)
	if name != "" {
		terms = append(terms, name)
	}
	if full != "" && !strings.EqualFold(full, name) {
		terms = append(terms, full)
	}
	return terms
}

// IsContractDocument reports whether the document belongs to contract
// sections 1 through 8.
func (d RequiredDocument) IsContractDocument() bool {
	section := strings.TrimSpace(d.ContractSection)
	for i := 1; i <= 8; i++ {
		if strings.HasPrefix(section, strconv.Itoa(i)+".") {
			return true
		}
	}
	return false
}

// HasFile reports whether a representative file is already recorded.
func (d RequiredDocument) HasFile() bool {
	return strings.TrimSpace(d.RepresentativeFile) != ""
}

// FormatDocNumber pads integer document numbers to three digits.
// Non-numeric identifiers are returned trimmed but otherwise unchanged.
func FormatDocNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	// Spreadsheets export whole numbers as "7.0".
	trimmed := strings.TrimSuffix(raw, ".0")
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return raw
	}
	return fmt.Sprintf("%03d", n)
}
