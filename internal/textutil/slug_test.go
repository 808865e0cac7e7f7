package textutil

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2007-Uskrsnji turnir - Secanj, 06.04.2007", "2007-uskrsnji-turnir-secanj-06-04-2007"},
		{"Turnir ''Nikola i Branka'',13-14.09.2008", "turnir-nikola-i-branka-13-14-09-2008"},
		{"Đurđevdan ŽKK Šabac", "djurdjevdan-zkk-sabac"},
		{"Čačak ćevapi", "cacak-cevapi"},
		{"Crème brûlée", "creme-brulee"},
		{"  --2003 i pre--  ", "2003-i-pre"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSlugifyID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2008-Turnir Đurđevdan, ŽKK Šabac", "2008-turnir-ur-evdan-kk-abac"},
		{"2007-Uskrsnji turnir - Secanj, 06.04.2007", "2007-uskrsnji-turnir-secanj-06-04-2007"},
		{"2003 i pre", "2003-i-pre"},
		{"--Čačak--", "a-ak"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SlugifyID(tt.input); got != tt.want {
			t.Errorf("SlugifyID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
