package matcher

import (
	"regexp"
	"strconv"
	"time"
)

var (
	isoDatePattern   = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	dateRangePattern = regexp.MustCompile(`(\d{1,2})-(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	dottedPattern    = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)
)

// ParseDate recognises YYYY-MM-DD, DD-DD.MM.YYYY (resolved to the end day)
// and DD.MM.YYYY. The result is a calendar date at UTC midnight.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if m := isoDatePattern.FindStringSubmatch(value); m != nil {
		return civilDate(m[1], m[2], m[3])
	}
	if m := dateRangePattern.FindStringSubmatch(value); m != nil {
		return civilDate(m[4], m[3], m[2])
	}
	if m := dottedPattern.FindStringSubmatch(value); m != nil {
		return civilDate(m[3], m[2], m[1])
	}
	return time.Time{}, false
}

func civilDate(year, month, day string) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), true
}

// daysBetween returns the absolute whole-day distance between two dates.
func daysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}
