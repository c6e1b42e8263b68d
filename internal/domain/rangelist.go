// Package domain implements selection parsing, extraction, and the
// per-file processing driver for carve.
package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "github.com/carve-tools/carve/internal/model"
)

// The two token grammars of a selection list. A token is either a single
// 1-based position or an inclusive pair; anything else, including signed
// numbers, is rejected with the token quoted as written.
var (
	pairPattern   = regexp.MustCompile(`^(\d+)-(\d+)$`)
	singlePattern = regexp.MustCompile(`^\d+$`)
)

// ParseSelection turns a list specification such as "1,7,3-5" into the
// ordered half-open ranges it denotes. Positions are 1-based inclusive in
// the specification and 0-based half-open internally, so "1,7,3-5" becomes
// [0,1) [6,7) [2,5). Token order is preserved verbatim; nothing is sorted,
// merged, or deduplicated. Parsing stops at the first invalid token and
// returns no partial result.
func ParseSelection(spec string) (m.SelectionList, error) {
	if spec == "" {
		return nil, errors.New("empty string")
	}

	tokens := strings.Split(spec, ",")
	list := make(m.SelectionList, 0, len(tokens))

	for _, token := range tokens {
		switch {
		case pairPattern.MatchString(token):
			bounds := pairPattern.FindStringSubmatch(token)

			start, err := parsePositiveInt(bounds[1])
			if err != nil {
				return nil, err
			}

			end, err := parsePositiveInt(bounds[2])
			if err != nil {
				return nil, err
			}

			if start >= end {
				return nil, fmt.Errorf(
					"First number in range (%d) must be lower than second number (%d)",
					start, end,
				)
			}

			list = append(list, m.Range{Start: start - 1, End: end})
		case singlePattern.MatchString(token):
			n, err := parsePositiveInt(token)
			if err != nil {
				return nil, err
			}

			list = append(list, m.Range{Start: n - 1, End: n})
		default:
			return nil, fmt.Errorf("illegal list value: \"%s\"", token)
		}
	}

	return list, nil
}

// parsePositiveInt parses a strictly positive decimal value. The grammar
// patterns guarantee digits-only input, so strconv can only fail on
// overflow; a parsed zero is reported as the literal value 0 no matter how
// many zeros spelled it.
func parsePositiveInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("illegal list value: \"%s\"", err)
	}

	if n < 1 {
		return 0, fmt.Errorf("illegal list value: \"%d\"", 0)
	}

	return n, nil
}
