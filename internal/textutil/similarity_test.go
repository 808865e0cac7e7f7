package textutil

import (
	"math"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"turnir", "turnir", 0},
		{"šabac", "sabac", 1},
	}
	for _, tt := range tests {
		if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestStringSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "Turnir Nikola", "Turnir Nikola", 1},
		{"both empty", "", "", 1},
		{"one empty", "abc", "", 0},
		{"case insensitive", "TURNIR", "turnir", 1},
		{"partial", "kitten", "sitting", 1 - 3.0/7.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("StringSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStringSimilaritySymmetric(t *testing.T) {
	a := "memorijalni turnir nikola i branka"
	b := "turnir nikola branka"
	if StringSimilarity(a, b) != StringSimilarity(b, a) {
		t.Fatal("similarity is not symmetric")
	}
}
