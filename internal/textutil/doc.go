// Package textutil provides the text primitives used for gallery matching and
// identifier generation.
//
// The primary use cases are:
//   - Normalising titles so folder names and news headlines compare equal
//   - Computing Levenshtein-based similarity between normalised titles
//   - Extracting distinctive keywords by dropping short tokens and stop words
//   - Producing ASCII slugs from Serbian Latin folder names
//
// Normalisation lowercases text and collapses every run of non-letter runes
// into a single space. Letters are judged by unicode.IsLetter, so Serbian
// Latin diacritics (š đ č ć ž) and Cyrillic survive while digits and
// punctuation do not.
package textutil
