package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidISBN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"isbn-10 raw digits", "8545702876", true},
		{"isbn-13 raw digits", "9788545702870", true},
		{"isbn-13 hyphenated", "978-85-457-0287-0", true},
		{"hyphenated 13 chars", "978-854570287", true},
		{"too short", "123", false},
		{"eleven digits", "12345678901", false},
		{"twelve digits", "123456789012", false},
		// 14 contiguous digits fall inside the 13-17 char digits-or-hyphens
		// form; the rule is format-only and does not count digits.
		{"fourteen raw digits", "12345678901234", true},
		{"letters", "97885457028AB", false},
		{"isbn-10 with X check digit", "854570287X", false},
		{"hyphenated 18 chars", "978-85-457-0287-0-1", false},
		{"spaces", "978 8545702870", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidISBN(tt.input))
		})
	}
}

func TestNormalizeISBN(t *testing.T) {
	assert.Equal(t, "9788545702870", NormalizeISBN("978-85-457-0287-0"))
	assert.Equal(t, "9788545702870", NormalizeISBN("9788545702870"))
	assert.Equal(t, "", NormalizeISBN("---"))
}

func TestIsDocumentID(t *testing.T) {
	assert.True(t, IsDocumentID("665f1c2b9d3e4a5b6c7d8e9f"))
	assert.False(t, IsDocumentID("9788545702870"), "isbn is not a document id")
	assert.False(t, IsDocumentID("665F1C2B9D3E4A5B6C7D8E9F"), "uppercase hex is rejected")
	assert.False(t, IsDocumentID("665f1c2b9d3e4a5b6c7d8e9"), "23 chars")
	assert.False(t, IsDocumentID("665f1c2b9d3e4a5b6c7d8e9fa"), "25 chars")
}
