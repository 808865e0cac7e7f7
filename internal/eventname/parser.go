package eventname

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// 13-14.09.2008
	dateRangePattern = regexp.MustCompile(`(\d{1,2})-(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	// 06.04.2007
	datePattern = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)

	trailingCommaPattern = regexp.MustCompile(`\s*,\s*$`)
	whitespaceRunPattern = regexp.MustCompile(`\s{2,}`)
)

// Parsed is the metadata derived from a gallery folder name.
type Parsed struct {
	Title     string    `json:"title"`
	Date      string    `json:"date,omitempty"`
	DateRange string    `json:"dateRange,omitempty"`
	Month     int       `json:"month,omitempty"`
	EventType EventType `json:"eventType"`
	Category  Category  `json:"category"`
}

// Parse extracts the date, month, cleaned title, event type and category from
// a folder name. The year of the enclosing period does not influence the
// result; it is part of the signature so callers pass the full folder context.
func Parse(folderName string, year int) Parsed {
	parsed := Parsed{
		EventType: DetectEventType(folderName),
		Category:  DetectCategory(folderName),
	}

	if m := dateRangePattern.FindStringSubmatch(folderName); m != nil {
		parsed.DateRange = m[0]
		parsed.Month = atoi(m[3])
	} else if m := datePattern.FindStringSubmatch(folderName); m != nil {
		parsed.Date = m[0]
		parsed.Month = atoi(m[2])
	}

	if parsed.Month == 0 {
		parsed.Month = MonthFromName(folderName)
	}

	parsed.Title = CleanTitle(folderName)
	return parsed
}

// CleanTitle removes the first date range and the first single date from
// text, drops a trailing comma and collapses repeated whitespace.
func CleanTitle(text string) string {
	cleaned := replaceFirst(dateRangePattern, text)
	cleaned = replaceFirst(datePattern, cleaned)
	cleaned = trailingCommaPattern.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRunPattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

func replaceFirst(re *regexp.Regexp, text string) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + text[loc[1]:]
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
