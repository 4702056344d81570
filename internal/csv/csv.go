// Package csv tokenizes spreadsheet CSV exports. The dialect is the one
// Google Sheets emits: comma separated, double-quote quoting, doubled
// quotes as escapes. Malformed quoting never fails; an unterminated quote
// swallows the rest of the input as field content.
package csv

import "strings"

// SplitRows splits raw CSV text into row strings. \n and \r\n terminate a
// row unless they appear inside an open quoted field; a lone \r outside
// quotes also terminates. A trailing partial row without a terminator is
// emitted when non-empty.
func SplitRows(text string) []string {
	var rows []string
	var current strings.Builder
	insideQuotes := false

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if ch == '"' {
			current.WriteByte(ch)
			if insideQuotes && i+1 < len(text) && text[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				insideQuotes = !insideQuotes
			}
			continue
		}

		if (ch == '\n' || ch == '\r') && !insideQuotes {
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			rows = append(rows, current.String())
			current.Reset()
			continue
		}

		current.WriteByte(ch)
	}

	if current.Len() > 0 {
		rows = append(rows, current.String())
	}

	return rows
}

// ParseFields splits one row into trimmed field values. Commas separate
// fields outside quotes; a doubled quote inside a quoted field is a literal
// quote; other quotes toggle the quoting state and are dropped.
func ParseFields(row string) []string {
	var fields []string
	var current strings.Builder
	insideQuotes := false

	for i := 0; i < len(row); i++ {
		ch := row[i]

		if ch == '"' {
			if insideQuotes && i+1 < len(row) && row[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				insideQuotes = !insideQuotes
			}
			continue
		}

		if ch == ',' && !insideQuotes {
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}

		current.WriteByte(ch)
	}

	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// NonEmptyRows filters out rows that are blank after trimming.
func NonEmptyRows(rows []string) []string {
	filtered := make([]string, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row) != "" {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
