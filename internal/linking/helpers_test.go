package linking

import (
	"galerija/internal/gallery"
	"galerija/internal/matcher"
)

func testMatch(id string, score float64) matcher.Result {
	return matcher.Result{
		Event:   gallery.Event{ID: id, Title: "Event " + id, Year: 2022},
		Score:   score,
		Reasons: []string{"test"},
	}
}
