package textutil

import "unicode/utf8"

// LevenshteinDistance returns the minimum number of single-rune insertions,
// deletions and substitutions needed to turn a into b.
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// StringSimilarity returns 1 - distance/maxLen over the lowercased inputs.
// Two empty strings are identical (similarity 1).
func StringSimilarity(a, b string) float64 {
	a = lower(a)
	b = lower(b)
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(LevenshteinDistance(a, b))/float64(maxLen)
}
