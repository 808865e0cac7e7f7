package links

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	store := NewStore(nil, filepath.Join(t.TempDir(), "links.json"), nil)
	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data.Version != Version || len(data.Links) != 0 || data.Links == nil {
		t.Fatalf("unexpected default document: %+v", data)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "links.json")
	store := NewStore(nil, path, nil)
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = fixedClock(stamp)

	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	data.Add(Link{
		ContentType:    ContentVesti,
		ContentID:      "vest_001",
		GalleryEventID: "2023-kamp",
		MatchType:      MatchAuto,
		Confidence:     0.82,
		ConfirmedAt:    stamp,
	})
	if err := store.Save(data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(raw)
	for _, want := range []string{`"version": "1.0"`, `"lastUpdated": "2024-03-01T12:00:00Z"`, `"contentId": "vest_001"`, `    "galleryEventId"`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in file:\n%s", want, text)
		}
	}
	if strings.Contains(text, "confirmedBy") {
		t.Fatalf("empty confirmedBy should be omitted:\n%s", text)
	}

	reloaded, err := NewStore(nil, path, nil).Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	link, ok := reloaded.Find(ContentVesti, "vest_001")
	if !ok || link.GalleryEventID != "2023-kamp" || link.Confidence != 0.82 {
		t.Fatalf("unexpected reloaded link: %+v (found=%v)", link, ok)
	}
	if reloaded.Has(ContentTurniri, "vest_001") {
		t.Fatal("content type must be part of the key")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewStore(nil, path, nil).Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestSaveDetectsConcurrentWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	first := NewStore(nil, path, nil)
	first.now = fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	second := NewStore(nil, path, nil)
	second.now = fixedClock(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	a, err := first.Load()
	if err != nil {
		t.Fatal(err)
	}
	b, err := second.Load()
	if err != nil {
		t.Fatal(err)
	}
	if err := second.Save(b); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if err := first.Save(a); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The writer that saved last keeps working.
	b.Add(Link{ContentType: ContentTurniri, ContentID: "t1", GalleryEventID: "e", MatchType: MatchManual, Confidence: 1})
	if err := second.Save(b); err != nil {
		t.Fatalf("repeated Save: %v", err)
	}
}

func TestLockIsExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	first := NewStore(nil, path, nil)
	second := NewStore(nil, path, nil)

	if err := first.Lock(); err != nil {
		t.Fatalf("first Lock: %v", err)
	}
	if err := second.Lock(); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := second.Lock(); err != nil {
		t.Fatalf("Lock after release: %v", err)
	}
	if err := second.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := second.Unlock(); err != nil {
		t.Fatalf("second Unlock should be a no-op: %v", err)
	}
}

func TestCountByType(t *testing.T) {
	data := NewData(time.Now())
	data.Add(Link{ContentType: ContentVesti, ContentID: "a"})
	data.Add(Link{ContentType: ContentVesti, ContentID: "b"})
	data.Add(Link{ContentType: ContentTurniri, ContentID: "c"})
	counts := data.CountByType()
	if counts[ContentVesti] != 2 || counts[ContentTurniri] != 1 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestStoreUsesProvidedFilesystem(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/site/src/data/contentGalleryLinks.json"
	store := NewStore(fs, path, nil)

	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	data.Add(Link{ContentType: ContentVesti, ContentID: "v1", GalleryEventID: "2022-kamp", MatchType: MatchAuto, Confidence: 0.9})
	if err := store.Save(data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("expected document on the in-memory filesystem: %v", err)
	}
	if !strings.Contains(string(raw), `"galleryEventId": "2022-kamp"`) {
		t.Fatalf("unexpected document: %s", raw)
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("document leaked onto the host filesystem at %s", path)
	}

	reloaded, err := NewStore(fs, path, nil).Load()
	if err != nil || !reloaded.Has(ContentVesti, "v1") {
		t.Fatalf("reload = %+v, %v", reloaded, err)
	}
}
