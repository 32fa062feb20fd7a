// Package numfmt parses and formats human-entered numeric strings with
// thousands grouping, the way budget and price fields arrive from forms.
package numfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseGrouped strips grouping separators from text and parses the
// remainder as a base-10 integer. It fails when no digits remain, so
// callers must guard empty input before doing arithmetic on the result.
func ParseGrouped(text string) (int64, error) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(text))
	if cleaned == "" || cleaned == "-" {
		return 0, fmt.Errorf("no digits in %q", text)
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", text, err)
	}
	return n, nil
}

// FormatGrouped renders n with thousands separators, e.g. 1000000 -> "1,000,000".
func FormatGrouped(n int64) string {
	return humanize.Comma(n)
}

// FormatGroupedFloat renders f with thousands separators, keeping any
// fractional digits, e.g. 1234567.5 -> "1,234,567.5".
func FormatGroupedFloat(f float64) string {
	return humanize.Commaf(f)
}
