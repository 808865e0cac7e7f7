package content

import (
	"testing"

	"github.com/spf13/afero"

	"galerija/internal/links"
)

func TestLoadReadsBothCollections(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/c/vesti/vest_002.json":     `{"title": "Druga vest", "date": "2022-09-14", "date_formatted": "14. septembar 2022."}`,
		"/c/vesti/vest_001.json":     `{"title": "Prva vest", "date": null}`,
		"/c/vesti/notes.txt":         `ignored`,
		"/c/vesti/broken.json":       `{"title": `,
		"/c/vesti/untitled.json":     `{"date": "2020-01-01"}`,
		"/c/turniri/turnir_001.json": `{"title": "Memorijal", "date": "2021-05-01", "content": []}`,
	}
	for path, body := range files {
		if err := afero.WriteFile(fs, path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	records, err := NewLoader(fs, "/c", nil).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(records), records)
	}
	if records[0].ID != "vest_001" || records[0].Date != "" || records[0].Type != links.ContentVesti {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].DateFormatted != "14. septembar 2022." {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
	if records[2].Type != links.ContentTurniri || records[2].Title != "Memorijal" || records[2].Path != "/c/turniri/turnir_001.json" {
		t.Fatalf("unexpected tournament record: %+v", records[2])
	}
}

func TestLoadMissingCollections(t *testing.T) {
	records, err := NewLoader(afero.NewMemMapFs(), "/nothing", nil).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
