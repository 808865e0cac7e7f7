package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"galerija/internal/gallery"
	"galerija/internal/links"
)

func sampleData() *gallery.Data {
	images := []gallery.Image{
		{FileName: "1.jpg", Path: "/images/Galerija/2022/Kamp", FullPath: "/images/Galerija/2022/Kamp/1.jpg", Alt: "Kamp - 1", Index: 1},
		{FileName: "2.jpg", Path: "/images/Galerija/2022/Kamp", FullPath: "/images/Galerija/2022/Kamp/2.jpg", Alt: "Kamp - 2", Index: 2},
	}
	return &gallery.Data{
		Periods: []gallery.Period{{
			ID: "2022", Year: "2022", YearNumber: 2022, Title: "Galerija 2022",
			AccentColor: gallery.AccentAmber, TotalImages: 2, EventCount: 1,
			Events: []gallery.Event{{
				ID: "2022-kamp", Slug: "kamp", Title: "Kamp", Year: 2022, Month: 7,
				RawFolderName: "Kamp", FolderPath: "/g/2022/Kamp",
				Images: images, CoverImage: images[0], ImageCount: 2,
				Category: "opšte", EventType: "kamp",
			}},
		}},
		TotalImages: 2,
		TotalEvents: 1,
		YearRange:   "2022-2022",
	}
}

func sampleLinks() *links.Data {
	data := links.NewData(time.Now())
	data.Add(links.Link{ContentType: links.ContentVesti, ContentID: "vest_001", GalleryEventID: "2022-kamp", MatchType: links.MatchAuto, Confidence: 0.9})
	data.Add(links.Link{ContentType: links.ContentTurniri, ContentID: "t1", GalleryEventID: "gone", MatchType: links.MatchManual, Confidence: 1, ConfirmedBy: "ana"})
	return data
}

func TestExportAndLookup(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	exportedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	if err := c.Export(ctx, sampleData(), sampleLinks(), exportedAt); err != nil {
		t.Fatalf("Export: %v", err)
	}

	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Periods != 1 || stats.Events != 1 || stats.Images != 2 || stats.Links != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if !stats.ExportedAt.Equal(exportedAt) {
		t.Fatalf("exported at = %v", stats.ExportedAt)
	}

	linked, ok, err := c.LookupLink(ctx, links.ContentVesti, "vest_001")
	if err != nil || !ok {
		t.Fatalf("LookupLink: %v, %v", ok, err)
	}
	if !linked.Found || linked.Title != "Kamp" || linked.CoverImage != "/images/Galerija/2022/Kamp/1.jpg" {
		t.Fatalf("unexpected linked event: %+v", linked)
	}
	if linked.MatchType != links.MatchAuto || linked.Confidence != 0.9 || linked.ImageCount != 2 {
		t.Fatalf("unexpected link details: %+v", linked)
	}

	dangling, ok, err := c.LookupLink(ctx, links.ContentTurniri, "t1")
	if err != nil || !ok || dangling.Found {
		t.Fatalf("expected dangling link, got %+v ok=%v err=%v", dangling, ok, err)
	}

	if _, ok, err := c.LookupLink(ctx, links.ContentVesti, "missing"); err != nil || ok {
		t.Fatalf("expected no link, ok=%v err=%v", ok, err)
	}
}

func TestExportReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := c.Export(ctx, sampleData(), sampleLinks(), time.Now()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if err := c.Export(ctx, &gallery.Data{}, nil, time.Now()); err != nil {
		t.Fatalf("second Export: %v", err)
	}
	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Events != 0 || stats.Links != 0 {
		t.Fatalf("expected empty snapshot, got %+v", stats)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = reopened.Close()
}
