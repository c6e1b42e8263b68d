package domain

import (
	"strings"

	"golang.org/x/text/encoding/unicode"

	m "github.com/carve-tools/carve/internal/model"
)

// ExtractChars returns the characters of line selected by the list, in
// list order. Positions index Unicode scalar values, not bytes. Ranges
// past the end of the line contribute nothing; overlapping or repeated
// ranges repeat their characters.
func ExtractChars(line string, selection m.SelectionList) string {
	runes := []rune(line)

	var out strings.Builder
	for _, r := range selection {
		if r.Start >= len(runes) {
			continue
		}
		out.WriteString(string(runes[r.Start:min(r.End, len(runes))]))
	}

	return out.String()
}

// ExtractBytes returns the bytes of line selected by the list, in list
// order. Slicing may land inside a multi-byte UTF-8 sequence, so the
// selected bytes are decoded lossily: every ill-formed subpart comes back
// as U+FFFD instead of failing the line. This differs observably from
// ExtractChars on multi-byte input and is intentional.
func ExtractBytes(line string, selection m.SelectionList) string {
	var out []byte
	for _, r := range selection {
		if r.Start >= len(line) {
			continue
		}
		out = append(out, line[r.Start:min(r.End, len(line))]...)
	}

	return decodeLossy(out)
}

// ExtractFields returns the fields of record selected by the list, in list
// order. Column indexes beyond the record's width are dropped silently: a
// record shorter than the selection is normal input, never an error. The
// caller serializes the result; no joining happens here.
func ExtractFields(record m.Record, selection m.SelectionList) m.Record {
	out := make(m.Record, 0, len(selection))
	for _, r := range selection {
		if r.Start >= len(record) {
			continue
		}
		out = append(out, record[r.Start:min(r.End, len(record))]...)
	}

	return out
}

// decodeLossy converts raw bytes to a string, substituting the Unicode
// replacement character for each maximal ill-formed UTF-8 subpart.
func decodeLossy(raw []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}

	return string(decoded)
}
