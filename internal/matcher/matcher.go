package matcher

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"galerija/internal/gallery"
	"galerija/internal/textutil"
)

const (
	maxDateScore    = 40.0
	maxTitleScore   = 40.0
	maxKeywordScore = 20.0
	// MinScore is the exclusive lower bound for a candidate to be reported.
	MinScore = 20.0
	// DefaultTopN is the number of candidates offered to an operator.
	DefaultTopN = 3

	nearDateWindowDays   = 7
	pointsPerDayDistance = 5
	reasonSimilarityMin  = 0.3
)

// Result is a scored candidate event with human-readable reasons.
type Result struct {
	Event   gallery.Event `json:"event"`
	Score   float64       `json:"score"`
	Reasons []string      `json:"reasons"`
}

// Matcher scores events. The zero value is ready to use.
type Matcher struct {
	// DateWarning, when set, receives every non-empty date that could not be
	// parsed. Such dates contribute no date score.
	DateWarning func(value string)
}

// Match scores title and date against every event using a zero Matcher.
func Match(title, date string, events []gallery.Event) []Result {
	return Matcher{}.Match(title, date, events)
}

// TopMatches returns at most n of the best candidates using a zero Matcher.
func TopMatches(title, date string, events []gallery.Event, n int) []Result {
	return Matcher{}.TopMatches(title, date, events, n)
}

// StringSimilarity is the normalised Levenshtein similarity in [0,1].
func StringSimilarity(a, b string) float64 {
	return textutil.StringSimilarity(a, b)
}

// Match returns every event scoring above MinScore, highest score first.
// Ties keep the input order of events.
func (m Matcher) Match(title, date string, events []gallery.Event) []Result {
	contentDate, hasDate := m.parse(date)
	normalizedTitle := textutil.NormalizeTitle(title)
	contentKeywords := textutil.Keywords(title)

	results := make([]Result, 0)
	for _, event := range events {
		score := 0.0
		var reasons []string

		if hasDate {
			eventDate := event.DateRange
			if eventDate == "" {
				eventDate = event.Date
			}
			if parsed, ok := m.parse(eventDate); ok {
				days := daysBetween(contentDate, parsed)
				switch {
				case days == 0:
					score += maxDateScore
					reasons = append(reasons, "Tačno poklapanje datuma")
				case days <= nearDateWindowDays:
					score += max(0, maxDateScore-float64(days*pointsPerDayDistance))
					reasons = append(reasons, fmt.Sprintf("Datum u razlici od %d dana", days))
				}
			}
		}

		similarity := textutil.StringSimilarity(normalizedTitle, textutil.NormalizeTitle(event.Title))
		score += similarity * maxTitleScore
		if similarity > reasonSimilarityMin {
			reasons = append(reasons, fmt.Sprintf("Sličnost naslova: %.0f%%", similarity*100))
		}

		if len(contentKeywords) > 0 {
			matched := matchedKeywords(contentKeywords, textutil.Keywords(event.Title))
			score += float64(len(matched)) / float64(len(contentKeywords)) * maxKeywordScore
			if len(matched) > 0 {
				reasons = append(reasons, "Ključne reči: "+strings.Join(matched, ", "))
			}
		}

		if score > MinScore {
			if reasons == nil {
				reasons = []string{}
			}
			results = append(results, Result{Event: event, Score: score, Reasons: reasons})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// TopMatches returns at most n of the best candidates. A non-positive n
// selects DefaultTopN.
func (m Matcher) TopMatches(title, date string, events []gallery.Event, n int) []Result {
	if n <= 0 {
		n = DefaultTopN
	}
	results := m.Match(title, date, events)
	if len(results) > n {
		results = results[:n]
	}
	return results
}

func (m Matcher) parse(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, ok := ParseDate(value)
	if !ok {
		if m.DateWarning != nil {
			m.DateWarning(value)
		}
		return time.Time{}, false
	}
	return parsed, true
}

// matchedKeywords returns the content keywords that contain, or are
// contained in, some event keyword.
func matchedKeywords(content, event []string) []string {
	var matched []string
	for _, kw := range content {
		for _, ekw := range event {
			if strings.Contains(ekw, kw) || strings.Contains(kw, ekw) {
				matched = append(matched, kw)
				break
			}
		}
	}
	return matched
}
