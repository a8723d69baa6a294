// Package dateutils provides the date parsing and calendar arithmetic used by
// the import pipeline and the analytics engine.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the canonical storage format for transaction dates.
// It is fixed-width, so lexicographic order equals chronological order.
const DateLayoutISO = "2006-01-02"

// Bank exports rarely carry a locale signal, so numeric dates are matched
// structurally and validated against the real calendar afterwards.
var (
	isoPattern       = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})($|[T\s])`)
	numericPattern   = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})$`)
	shortYearPattern = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2})$`)
)

// ParseStatementDate parses a raw statement date cell into canonical
// YYYY-MM-DD form. Accepted inputs:
//
//   - ISO YYYY-MM-DD, optionally followed by a time component
//   - D/M/Y or M/D/Y with 4-digit year, separated by slash, dash or dot
//   - the same with a 2-digit year (pivot: yy > 50 is 19xx, else 20xx)
//
// For two-digit day/month pairs where both values are <= 12 the input is
// ambiguous; day-first (DD/MM/YYYY) is assumed and ambiguous=true is returned
// so callers can surface the guess. Every candidate is validated against true
// calendar rules: Feb 30 or month 13 fail regardless of shape.
func ParseStatementDate(value string) (iso string, ambiguous bool, err error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false, fmt.Errorf("empty date")
	}

	if m := isoPattern.FindStringSubmatch(trimmed); m != nil {
		iso, err := buildISODate(m[1], m[2], m[3])
		return iso, false, err
	}

	if m := numericPattern.FindStringSubmatch(trimmed); m != nil {
		return resolveDayMonth(m[1], m[2], m[3])
	}

	if m := shortYearPattern.FindStringSubmatch(trimmed); m != nil {
		yy, _ := strconv.Atoi(m[3])
		year := "20" + m[3]
		if yy > 50 {
			year = "19" + m[3]
		}
		return resolveDayMonth(m[1], m[2], year)
	}

	return "", false, fmt.Errorf("unable to parse date: %s", value)
}

// resolveDayMonth decides which of the two numeric fields is the day.
// A value greater than 12 is unambiguously the day; otherwise day-first wins.
func resolveDayMonth(a, b, year string) (string, bool, error) {
	aNum, _ := strconv.Atoi(a)
	bNum, _ := strconv.Atoi(b)

	if aNum > 12 {
		iso, err := buildISODate(year, b, a)
		return iso, false, err
	}
	if bNum > 12 {
		iso, err := buildISODate(year, a, b)
		return iso, false, err
	}

	// Both fields are <= 12 here and every month has at least 12 days, so
	// the day-first build always validates.
	iso, err := buildISODate(year, b, a)
	return iso, err == nil, err
}

// buildISODate assembles and calendar-validates a YYYY-MM-DD string.
func buildISODate(y, m, d string) (string, error) {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)

	if !IsValidDate(year, month, day) {
		return "", fmt.Errorf("invalid calendar date: %04d-%02d-%02d", year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

// IsValidDate reports whether year/month/day name a real calendar date.
// time.Date normalizes overflow (Feb 30 becomes Mar 2), so the reconstructed
// date must round-trip exactly.
func IsValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// ParseISODate parses a canonical YYYY-MM-DD string to a UTC midnight instant.
// All day arithmetic is anchored to UTC so DST transitions cannot skew spans.
func ParseISODate(iso string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date '%s': %w", iso, err)
	}
	return t, nil
}

// DaysBetween returns the number of calendar days from a to b (b - a).
// Both arguments must be canonical ISO dates; malformed input yields 0.
func DaysBetween(a, b string) int {
	ta, err := ParseISODate(a)
	if err != nil {
		return 0
	}
	tb, err := ParseISODate(b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// MonthOf returns the YYYY-MM prefix of a canonical ISO date.
func MonthOf(iso string) string {
	if len(iso) < 7 {
		return iso
	}
	return iso[:7]
}
