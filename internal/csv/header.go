package csv

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripBOM removes a leading UTF-8 byte-order mark from the header row.
func StripBOM(line string) string {
	return strings.TrimPrefix(line, "\ufeff")
}

// NormalizeHeader folds a header cell for matching: decompose, drop
// diacritics, trim, lowercase. "Preço" and "preco" normalize equal.
func NormalizeHeader(value string) string {
	folded, _, err := transform.String(stripDiacritics, value)
	if err != nil {
		folded = value
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// NormalizeKey is the stricter variant used for config sheets: like
// NormalizeHeader but keeping only letters and digits, so "Endereço 1"
// matches "endereco1".
func NormalizeKey(value string) string {
	folded := NormalizeHeader(value)
	var b strings.Builder
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FindColumn resolves a logical field to a column index by trying each
// candidate name in order against the normalized headers. Returns -1 when
// no candidate is present.
func FindColumn(headers []string, candidates ...string) int {
	for _, candidate := range candidates {
		for i, header := range headers {
			if header == candidate {
				return i
			}
		}
	}
	return -1
}

// Cell returns the trimmed value at index, or "" when the index is -1 or
// the row is short.
func Cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
