package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopWords are dropped from keyword sets: articles, prepositions and terms
// that appear in almost every basketball headline.
var stopWords = map[string]struct{}{
	"i": {}, "u": {}, "na": {}, "sa": {}, "od": {}, "do": {}, "za": {}, "po": {},
	"kk": {}, "košarkaški": {}, "klub": {}, "protiv": {},
	"turnir": {}, "memorijalni": {}, "utakmica": {}, "trening": {}, "kamp": {},
	"seniorke": {}, "seniori": {}, "juniori": {}, "juniorke": {},
	"kadeti": {}, "kadetkinje": {},
}

// minKeywordRunes is the shortest token kept as a keyword.
const minKeywordRunes = 3

func lower(s string) string {
	return strings.ToLower(s)
}

// NormalizeTitle lowercases s, replaces every run of non-letter runes with a
// single space and trims the result.
func NormalizeTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range lower(s) {
		if !unicode.IsLetter(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Keywords returns the distinctive tokens of a title in order of appearance.
// Tokens shorter than three runes and stop words are discarded.
func Keywords(title string) []string {
	normalized := NormalizeTitle(title)
	if normalized == "" {
		return nil
	}
	fields := strings.Split(normalized, " ")
	out := make([]string, 0, len(fields))
	for _, word := range fields {
		if utf8.RuneCountInString(word) < minKeywordRunes {
			continue
		}
		if IsStopWord(word) {
			continue
		}
		out = append(out, word)
	}
	return out
}

// IsStopWord reports whether word is ignored during keyword extraction.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
