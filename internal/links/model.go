package links

import "time"

// Version is the document format version written by this package.
const Version = "1.0"

// ContentType identifies a content collection.
type ContentType string

const (
	ContentVesti   ContentType = "vesti"
	ContentTurniri ContentType = "turniri"
)

// ContentTypes lists the linkable collections in processing order.
var ContentTypes = []ContentType{ContentVesti, ContentTurniri}

// Valid reports whether t names a known collection.
func (t ContentType) Valid() bool {
	return t == ContentVesti || t == ContentTurniri
}

// MatchType records how a link was established.
type MatchType string

const (
	MatchAuto   MatchType = "auto"
	MatchManual MatchType = "manual"
)

// Link associates one content record with one gallery event.
type Link struct {
	ContentType    ContentType `json:"contentType"`
	ContentID      string      `json:"contentId"`
	GalleryEventID string      `json:"galleryEventId"`
	MatchType      MatchType   `json:"matchType"`
	Confidence     float64     `json:"confidence"`
	ConfirmedBy    string      `json:"confirmedBy,omitempty"`
	ConfirmedAt    time.Time   `json:"confirmedAt,omitzero"`
}

// Data is the persisted link document.
type Data struct {
	Version     string    `json:"version"`
	LastUpdated time.Time `json:"lastUpdated"`
	Links       []Link    `json:"links"`
}

// NewData returns an empty document stamped with now.
func NewData(now time.Time) *Data {
	return &Data{
		Version:     Version,
		LastUpdated: now.UTC(),
		Links:       []Link{},
	}
}

// Find returns the first link for the given content record.
func (d *Data) Find(contentType ContentType, contentID string) (Link, bool) {
	for _, link := range d.Links {
		if link.ContentType == contentType && link.ContentID == contentID {
			return link, true
		}
	}
	return Link{}, false
}

// Has reports whether the content record is already linked.
func (d *Data) Has(contentType ContentType, contentID string) bool {
	_, ok := d.Find(contentType, contentID)
	return ok
}

// Add appends link. Links are only ever appended, never replaced.
func (d *Data) Add(link Link) {
	d.Links = append(d.Links, link)
}

// CountByType returns the number of links per content type.
func (d *Data) CountByType() map[ContentType]int {
	counts := make(map[ContentType]int, len(ContentTypes))
	for _, link := range d.Links {
		counts[link.ContentType]++
	}
	return counts
}
