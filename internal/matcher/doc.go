// Package matcher ranks gallery events against a content title and date.
//
// A candidate scores up to 40 points for date proximity, up to 40 for title
// similarity and up to 20 for keyword overlap. Candidates scoring 20 or less
// are discarded. Matching is pure and deterministic: the same inputs in the
// same order always produce the same ranking.
package matcher
