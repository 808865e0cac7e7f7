package eventname

import "testing"

func TestParseSingleDate(t *testing.T) {
	got := Parse("Uskrsnji turnir - Secanj, 06.04.2007", 2007)
	want := Parsed{
		Title:     "Uskrsnji turnir - Secanj",
		Date:      "06.04.2007",
		Month:     4,
		EventType: EventTurnir,
		Category:  CategoryOpste,
	}
	if got != want {
		t.Fatalf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseDateRange(t *testing.T) {
	got := Parse("Turnir ''Nikola i Branka'',13-14.09.2008", 2008)
	if got.DateRange != "13-14.09.2008" {
		t.Fatalf("DateRange = %q, want 13-14.09.2008", got.DateRange)
	}
	if got.Date != "" {
		t.Fatalf("Date = %q, want empty when a range is present", got.Date)
	}
	if got.Month != 9 {
		t.Fatalf("Month = %d, want 9", got.Month)
	}
	if got.Title != "Turnir ''Nikola i Branka''" {
		t.Fatalf("Title = %q", got.Title)
	}
	if got.EventType != EventTurnir {
		t.Fatalf("EventType = %q, want turnir", got.EventType)
	}
}

func TestParseWithoutDate(t *testing.T) {
	names := []string{
		"Sve selekcije, 2010",
		"Memorijalni turnir - Nikola i Branka, 2011",
		"Slava kluba",
		"",
	}
	for _, name := range names {
		got := Parse(name, 2010)
		if got.Date != "" || got.DateRange != "" {
			t.Errorf("Parse(%q) produced date %q range %q", name, got.Date, got.DateRange)
		}
	}
}

func TestParseMonthFromName(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Kamp u avgustu", 8},
		{"Trening, avgust", 8},
		{"Promocija knjige 5. marta", 3},
		{"Decembarska slava", 12},
		{"Slava, decembar", 12},
		{"Sve selekcije", 0},
	}
	for _, tt := range tests {
		if got := Parse(tt.name, 2010).Month; got != tt.want {
			t.Errorf("Parse(%q).Month = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestParseNumericMonthWinsOverName(t *testing.T) {
	got := Parse("Turnir u martu 12.05.2009", 2009)
	if got.Month != 5 {
		t.Fatalf("Month = %d, want 5 from the numeric date", got.Month)
	}
}

func TestParseCollapsesWhitespace(t *testing.T) {
	got := Parse("KK   Karadjordjevo  -  Reprezentacija, 04.07.2011", 2011)
	if got.Title != "KK Karadjordjevo - Reprezentacija" {
		t.Fatalf("Title = %q", got.Title)
	}
	if got.Category != CategoryMuski {
		t.Fatalf("Category = %q, want muški", got.Category)
	}
}

func TestDetectEventTypePrecedence(t *testing.T) {
	tests := []struct {
		name string
		want EventType
	}{
		{"Utakmica na turniru", EventTurnir},
		{"Trening pred utakmicu", EventTrening},
		{"UTAKMICA sezone", EventUtakmica},
		{"Letnji kamp", EventKamp},
		{"Promocija i slava", EventPromocija},
		{"Krsna slava", EventSlava},
		{"Razno", EventMixed},
	}
	for _, tt := range tests {
		if got := DetectEventType(tt.name); got != tt.want {
			t.Errorf("DetectEventType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDetectCategoryPrecedence(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"ŽKK Karadjordjevo - KK Partizan", CategoryZenski},
		{"Seniorke i seniori", CategoryZenski},
		{"KK Karadjordjevo - Vojvodina", CategoryMuski},
		{"Kadeti, 2010", CategoryMuski},
		{"Devojcice na treningu", CategoryZenski},
		{"Sve selekcije", CategoryOpste},
		// "kk " is unanchored, so any word ending in "kk" followed by a space matches.
		{"Rock koncert", CategoryOpste},
		{"Bekk tim", CategoryMuski},
	}
	for _, tt := range tests {
		if got := DetectCategory(tt.name); got != tt.want {
			t.Errorf("DetectCategory(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRuleTablesOrdering(t *testing.T) {
	if EventTypeRules[0].Type != EventTurnir {
		t.Fatalf("turnir must be the first event type rule, got %q", EventTypeRules[0].Type)
	}
	firstMale := -1
	lastFemale := -1
	for i, rule := range CategoryRules {
		switch rule.Category {
		case CategoryZenski:
			lastFemale = i
		case CategoryMuski:
			if firstMale < 0 {
				firstMale = i
			}
		}
	}
	if firstMale < lastFemale {
		t.Fatalf("female rules must precede male rules (first male %d, last female %d)", firstMale, lastFemale)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Turnir, 01.02.2003", "Turnir"},
		{"Turnir 1-2.03.2004 , ", "Turnir"},
		{"  Bez datuma  ", "Bez datuma"},
	}
	for _, tt := range tests {
		if got := CleanTitle(tt.input); got != tt.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
