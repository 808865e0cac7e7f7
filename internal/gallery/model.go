package gallery

import "galerija/internal/eventname"

// Image is a single picture inside an event.
type Image struct {
	FileName string `json:"fileName"`
	Path     string `json:"path"`
	FullPath string `json:"fullPath"`
	Alt      string `json:"alt"`
	Index    int    `json:"index"`
}

// Event is a gallery event built from one folder, or the synthetic
// "razne slike" event collecting a year's loose images.
type Event struct {
	ID            string              `json:"id"`
	Slug          string              `json:"slug"`
	Title         string              `json:"title"`
	Date          string              `json:"date,omitempty"`
	DateRange     string              `json:"dateRange,omitempty"`
	Year          int                 `json:"year"`
	Month         int                 `json:"month,omitempty"`
	RawFolderName string              `json:"rawFolderName"`
	FolderPath    string              `json:"folderPath"`
	Images        []Image             `json:"images"`
	CoverImage    Image               `json:"coverImage"`
	ImageCount    int                 `json:"imageCount"`
	Category      eventname.Category  `json:"category"`
	EventType     eventname.EventType `json:"eventType"`
}

// AccentColor alternates period styling.
type AccentColor string

const (
	AccentAmber AccentColor = "amber"
	AccentBlue  AccentColor = "blue"
)

// Period groups the events of one year folder.
type Period struct {
	ID           string      `json:"id"`
	Year         string      `json:"year"`
	YearNumber   int         `json:"yearNumber"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	AccentColor  AccentColor `json:"accentColor"`
	Events       []Event     `json:"events"`
	DirectImages []Image     `json:"directImages,omitempty"`
	TotalImages  int         `json:"totalImages"`
	EventCount   int         `json:"eventCount"`
}

// Data is the complete gallery model.
type Data struct {
	Periods     []Period `json:"periods"`
	TotalImages int      `json:"totalImages"`
	TotalEvents int      `json:"totalEvents"`
	YearRange   string   `json:"yearRange"`
}
