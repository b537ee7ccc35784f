package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredDocument_SearchTerms(t *testing.T) {
	tests := []struct {
		name string
		doc  RequiredDocument
		want []string
	}{
		{"name only", RequiredDocument{Name: "Bridge Design Manual"}, []string{"Bridge Design Manual"}},
		{"name and full name", RequiredDocument{Name: "BDM", FullName: "Bridge Design Manual"}, []string{"BDM", "Bridge Design Manual"}},
		{"full name duplicates name", RequiredDocument{Name: "Photos", FullName: " photos "}, []string{"Photos"}},
		{"full name only", RequiredDocument{FullName: "Photos"}, []string{"Photos"}},
		{"both empty", RequiredDocument{Name: "  "}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.SearchTerms())
		})
	}
}

func TestRequiredDocument_IsContractDocument(t *testing.T) {
	tests := []struct {
		section string
		want    bool
	}{
		{"1. General Provisions", true},
		{"8.2 Appendices", true},
		{" 4.1", true},
		{"9. Closeout", false},
		{"10. Other", false},
		{"", false},
		{"Appendix 1.", false},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			doc := RequiredDocument{ContractSection: tt.section}
			assert.Equal(t, tt.want, doc.IsContractDocument())
		})
	}
}

func TestRequiredDocument_HasFile(t *testing.T) {
	assert.False(t, RequiredDocument{}.HasFile())
	assert.False(t, RequiredDocument{RepresentativeFile: "   "}.HasFile())
	assert.True(t, RequiredDocument{RepresentativeFile: "manual.pdf"}.HasFile())
}

func TestFormatDocNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"7", "007"},
		{"42", "042"},
		{"637", "637"},
		{"1200", "1200"},
		{"7.0", "007"},
		{" 12 ", "012"},
		{"CO-12", "CO-12"},
		{"", ""},
		{"-3", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDocNumber(tt.in))
		})
	}
}
