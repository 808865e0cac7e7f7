package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var serbianLatinReplacer = strings.NewReplacer(
	"đ", "dj",
	"ž", "z",
	"š", "s",
	"č", "c",
	"ć", "c",
)

// Slugify converts text into a lowercase ASCII identifier. Serbian Latin
// letters are transliterated, remaining diacritics are stripped and every run
// of characters outside [a-z0-9] becomes a single dash.
func Slugify(text string) string {
	s := serbianLatinReplacer.Replace(lower(text))
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// SlugifyID produces the identifiers shared with the website's gallery data:
// lowercase, every run outside [a-z0-9] becomes one dash, no transliteration.
// "Turnir Đurđevdan" yields "turnir-ur-evdan", which is what the site expects.
func SlugifyID(text string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}
