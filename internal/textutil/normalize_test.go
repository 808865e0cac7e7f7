package textutil

import (
	"reflect"
	"testing"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Turnir ''Nikola i Branka''", "turnir nikola i branka"},
		{"  Uskrsnji   turnir - Secanj, ", "uskrsnji turnir secanj"},
		{"ŽKK Šabac: 2011", "žkk šabac"},
		{"Кошарка, Београд", "кошарка београд"},
		{"", ""},
		{"12.04.2008", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTitle(tt.input); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"drops stop words and short tokens", "Memorijalni turnir Nikola i Branka", []string{"nikola", "branka"}},
		{"drops generic basketball terms", "KK Karadjordjevo protiv seniori", []string{"karadjordjevo"}},
		{"keeps diacritics", "Košarkaški klub Čačak", []string{"čačak"}},
		{"empty", "", nil},
		{"only stop words", "turnir i kamp", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keywords(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Keywords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
