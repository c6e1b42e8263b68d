// Package model defines the data structures for positional extraction.
package model

// Mode names the unit a selection list is applied to.
type Mode string

const (
	// ModeBytes selects raw bytes of each input line.
	ModeBytes Mode = "bytes"
	// ModeChars selects Unicode characters of each input line.
	ModeChars Mode = "chars"
	// ModeFields selects delimited fields of each input record.
	ModeFields Mode = "fields"
)

// Range is a half-open [Start, End) interval over 0-based unit indices.
// Start is strictly lower than End and both are non-negative; the selection
// parser is the only producer and enforces this.
type Range struct {
	Start int
	End   int
}

// SelectionList holds ranges in the exact order the user wrote them.
// It is never sorted, merged, or deduplicated: extraction replays the list
// verbatim, overlaps and duplicates included. Built once at startup and
// read-only afterwards.
type SelectionList []Range

// Extract pairs the active mode with its selection list. Exactly one mode
// is in effect per run; the CLI guarantees that before the core runs.
type Extract struct {
	Mode      Mode
	Selection SelectionList
}

// Record is one parsed delimited row: an ordered sequence of field strings.
type Record []string
