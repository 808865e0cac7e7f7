package eventname

import "strings"

// EventType classifies what kind of occasion a gallery folder depicts.
type EventType string

const (
	EventTurnir    EventType = "turnir"
	EventUtakmica  EventType = "utakmica"
	EventTrening   EventType = "trening"
	EventKamp      EventType = "kamp"
	EventPromocija EventType = "promocija"
	EventSlava     EventType = "slava"
	EventMixed     EventType = "mixed"
)

// Category is the team selection a gallery event belongs to.
type Category string

const (
	CategoryMuski  Category = "muški"
	CategoryZenski Category = "ženski"
	CategoryOpste  Category = "opšte"
)

// EventTypeRule maps a lowercase substring to an event type.
type EventTypeRule struct {
	Keyword string
	Type    EventType
}

// CategoryRule maps a lowercase substring to a category.
type CategoryRule struct {
	Keyword  string
	Category Category
}

// MonthName maps a Serbian month spelling to its number.
type MonthName struct {
	Name  string
	Month int
}

// EventTypeRules are evaluated in order; the first matching keyword wins.
var EventTypeRules = []EventTypeRule{
	{"turnir", EventTurnir},
	{"utakmica", EventUtakmica},
	{"trening", EventTrening},
	{"kamp", EventKamp},
	{"promocija", EventPromocija},
	{"slava", EventSlava},
}

// CategoryRules are evaluated in order. Female keywords precede male ones, so
// "žkk" wins over the male "kk " when both appear. Matching is unanchored,
// which means short keywords can hit incidental substrings.
var CategoryRules = []CategoryRule{
	{"žkk", CategoryZenski},
	{"zkk", CategoryZenski},
	{"devojčice", CategoryZenski},
	{"devojcice", CategoryZenski},
	{"seniorke", CategoryZenski},
	{"kadetkinje", CategoryZenski},
	{"pionirke", CategoryZenski},
	{"zenski", CategoryZenski},
	{"ženski", CategoryZenski},
	{"kkk", CategoryMuski},
	{"kk ", CategoryMuski},
	{"juniori", CategoryMuski},
	{"pioniri", CategoryMuski},
	{"seniori", CategoryMuski},
	{"kadeti", CategoryMuski},
	{"muski", CategoryMuski},
	{"muški", CategoryMuski},
}

// MonthNames lists nominative and genitive month spellings. The first entry
// contained in a folder name wins; there is no ranking between mentions.
var MonthNames = []MonthName{
	{"januar", 1}, {"januara", 1},
	{"februar", 2}, {"februara", 2},
	{"mart", 3}, {"marta", 3},
	{"april", 4}, {"aprila", 4},
	{"maj", 5}, {"maja", 5},
	{"jun", 6}, {"juna", 6},
	{"jul", 7}, {"jula", 7},
	{"avgust", 8}, {"avgusta", 8},
	{"septembar", 9}, {"septembra", 9},
	{"oktobar", 10}, {"oktobra", 10},
	{"novembar", 11}, {"novembra", 11},
	{"decembar", 12}, {"decembra", 12},
	{"secanj", 1},
}

// DetectEventType returns the event type of the first matching rule, or
// EventMixed.
func DetectEventType(folderName string) EventType {
	lowered := strings.ToLower(folderName)
	for _, rule := range EventTypeRules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Type
		}
	}
	return EventMixed
}

// DetectCategory returns the category of the first matching rule, or
// CategoryOpste.
func DetectCategory(folderName string) Category {
	lowered := strings.ToLower(folderName)
	for _, rule := range CategoryRules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Category
		}
	}
	return CategoryOpste
}

// MonthFromName returns the month of the first month name contained in text,
// or 0 when none is found.
func MonthFromName(text string) int {
	lowered := strings.ToLower(text)
	for _, entry := range MonthNames {
		if strings.Contains(lowered, entry.Name) {
			return entry.Month
		}
	}
	return 0
}
