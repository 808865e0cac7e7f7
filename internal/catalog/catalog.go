package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"galerija/internal/gallery"
	"galerija/internal/links"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped whenever schema.sql changes. Older catalogs must be
// deleted and exported again.
const schemaVersion = 1

// ErrSchemaMismatch indicates a catalog written by an incompatible version.
var ErrSchemaMismatch = errors.New("catalog schema version mismatch")

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Catalog is an open SQLite snapshot.
type Catalog struct {
	db   *sql.DB
	path string
}

// Stats counts the rows of the current snapshot.
type Stats struct {
	Periods    int       `json:"periods"`
	Events     int       `json:"events"`
	Images     int       `json:"images"`
	Links      int       `json:"links"`
	ExportedAt time.Time `json:"exportedAt"`
}

// LinkedEvent is a content link joined with its event row.
type LinkedEvent struct {
	ContentType    links.ContentType
	ContentID      string
	GalleryEventID string
	MatchType      links.MatchType
	Confidence     float64
	Title          string
	Year           int
	ImageCount     int
	CoverImage     string
	Found          bool
}

// Open creates or opens the catalog at path.
func Open(ctx context.Context, path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	c := &Catalog{db: db, path: path}
	if err := c.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// Path returns the database file location.
func (c *Catalog) Path() string {
	return c.path
}

// Close closes the underlying database connection.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Catalog) initSchema(ctx context.Context) error {
	var tableExists int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		tx, err := c.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin schema tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit schema: %w", err)
		}
		return nil
	}

	var version int
	if err := c.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: catalog has version %d, expected %d (delete %s and export again)",
			ErrSchemaMismatch, version, schemaVersion, c.path)
	}
	return nil
}

// Export replaces the snapshot with data and linkData.
func (c *Catalog) Export(ctx context.Context, data *gallery.Data, linkData *links.Data, exportedAt time.Time) error {
	if data == nil {
		data = &gallery.Data{}
	}
	if linkData == nil {
		linkData = &links.Data{}
	}
	return retryOnBusy(ctx, func() error {
		return c.export(ctx, data, linkData, exportedAt)
	})
}

func (c *Catalog) export(ctx context.Context, data *gallery.Data, linkData *links.Data, exportedAt time.Time) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"content_links", "images", "events", "periods", "catalog_meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for pos, period := range data.Periods {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO periods (id, year, year_number, title, description, accent_color, total_images, event_count, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			period.ID, period.Year, period.YearNumber, period.Title, period.Description,
			string(period.AccentColor), period.TotalImages, period.EventCount, pos,
		); err != nil {
			return fmt.Errorf("insert period %s: %w", period.ID, err)
		}
		for eventPos, event := range period.Events {
			if err := insertEvent(ctx, tx, period.ID, eventPos, event); err != nil {
				return err
			}
		}
	}

	for _, link := range linkData.Links {
		var confirmedAt any
		if !link.ConfirmedAt.IsZero() {
			confirmedAt = link.ConfirmedAt.UTC().Format(time.RFC3339Nano)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO content_links (content_type, content_id, gallery_event_id, match_type, confidence, confirmed_by, confirmed_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(link.ContentType), link.ContentID, link.GalleryEventID, string(link.MatchType),
			link.Confidence, nullString(link.ConfirmedBy), confirmedAt,
		); err != nil {
			return fmt.Errorf("insert link %s/%s: %w", link.ContentType, link.ContentID, err)
		}
	}

	meta := map[string]string{
		"exported_at": exportedAt.UTC().Format(time.RFC3339Nano),
		"year_range":  data.YearRange,
	}
	for key, value := range meta {
		if _, err := tx.ExecContext(ctx, "INSERT INTO catalog_meta (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("insert meta %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

func insertEvent(ctx context.Context, tx *sql.Tx, periodID string, pos int, event gallery.Event) error {
	var month any
	if event.Month > 0 {
		month = event.Month
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO events (id, period_id, slug, title, date, date_range, year, month, raw_folder_name, folder_path,
			cover_image, image_count, category, event_type, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, periodID, event.Slug, event.Title, nullString(event.Date), nullString(event.DateRange),
		event.Year, month, event.RawFolderName, event.FolderPath, event.CoverImage.FullPath,
		event.ImageCount, string(event.Category), string(event.EventType), pos,
	); err != nil {
		return fmt.Errorf("insert event %s: %w", event.ID, err)
	}
	for _, image := range event.Images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO images (event_id, idx, file_name, path, full_path, alt) VALUES (?, ?, ?, ?, ?, ?)`,
			event.ID, image.Index, image.FileName, image.Path, image.FullPath, image.Alt,
		); err != nil {
			return fmt.Errorf("insert image %s/%s: %w", event.ID, image.FileName, err)
		}
	}
	return nil
}

// Stats reports row counts of the current snapshot.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	counts := []struct {
		table string
		dest  *int
	}{
		{"periods", &stats.Periods},
		{"events", &stats.Events},
		{"images", &stats.Images},
		{"content_links", &stats.Links},
	}
	for _, count := range counts {
		if err := c.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+count.table).Scan(count.dest); err != nil {
			return Stats{}, fmt.Errorf("count %s: %w", count.table, err)
		}
	}

	var exportedAt string
	err := c.db.QueryRowContext(ctx, "SELECT value FROM catalog_meta WHERE key = 'exported_at'").Scan(&exportedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return Stats{}, fmt.Errorf("read export time: %w", err)
	default:
		if ts, parseErr := time.Parse(time.RFC3339Nano, exportedAt); parseErr == nil {
			stats.ExportedAt = ts
		}
	}
	return stats, nil
}

// LookupLink returns the event linked to a content record. Found is false
// when the link points at an event missing from the snapshot.
func (c *Catalog) LookupLink(ctx context.Context, contentType links.ContentType, contentID string) (LinkedEvent, bool, error) {
	var (
		result     LinkedEvent
		matchType  string
		title      sql.NullString
		year       sql.NullInt64
		imageCount sql.NullInt64
		coverImage sql.NullString
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT l.gallery_event_id, l.match_type, l.confidence, e.title, e.year, e.image_count, e.cover_image
		 FROM content_links l LEFT JOIN events e ON e.id = l.gallery_event_id
		 WHERE l.content_type = ? AND l.content_id = ?`,
		string(contentType), contentID,
	).Scan(&result.GalleryEventID, &matchType, &result.Confidence, &title, &year, &imageCount, &coverImage)
	if errors.Is(err, sql.ErrNoRows) {
		return LinkedEvent{}, false, nil
	}
	if err != nil {
		return LinkedEvent{}, false, fmt.Errorf("lookup link: %w", err)
	}
	result.ContentType = contentType
	result.ContentID = contentID
	result.MatchType = links.MatchType(matchType)
	result.Found = title.Valid
	result.Title = title.String
	result.Year = int(year.Int64)
	result.ImageCount = int(imageCount.Int64)
	result.CoverImage = coverImage.String
	return result, true, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
