package linking

import (
	"galerija/internal/gallery"
	"galerija/internal/links"
)

// Resolver answers which gallery event a content record is linked to.
type Resolver struct {
	data  *links.Data
	index *gallery.Index
}

// NewResolver builds a resolver over loaded link data and an event index.
func NewResolver(data *links.Data, index *gallery.Index) *Resolver {
	if data == nil {
		data = &links.Data{}
	}
	if index == nil {
		index = gallery.NewIndex(nil)
	}
	return &Resolver{data: data, index: index}
}

// Resolve returns the linked event for a content record. It reports false
// when the record has no link or the linked event no longer exists.
func (r *Resolver) Resolve(contentType links.ContentType, contentID string) (gallery.Event, bool) {
	link, ok := r.data.Find(contentType, contentID)
	if !ok {
		return gallery.Event{}, false
	}
	return r.index.Lookup(link.GalleryEventID)
}

// Dangling returns the links whose gallery event is missing from the index,
// in document order.
func (r *Resolver) Dangling() []links.Link {
	var out []links.Link
	for _, link := range r.data.Links {
		if _, ok := r.index.Lookup(link.GalleryEventID); !ok {
			out = append(out, link)
		}
	}
	return out
}
