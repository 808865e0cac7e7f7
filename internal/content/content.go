// Package content loads the news and tournament records that get linked to
// gallery events. Only the fields needed for matching are decoded.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"galerija/internal/links"
	"galerija/internal/logging"
)

// Record is one content file.
type Record struct {
	Type          links.ContentType `json:"type"`
	ID            string            `json:"id"`
	Path          string            `json:"path"`
	Title         string            `json:"title"`
	Date          string            `json:"date,omitempty"`
	DateFormatted string            `json:"dateFormatted,omitempty"`
}

type recordFile struct {
	Title         *string `json:"title"`
	Date          *string `json:"date"`
	DateFormatted *string `json:"date_formatted"`
}

// Loader reads records from <dir>/<collection>/*.json.
type Loader struct {
	fs     afero.Fs
	dir    string
	logger *slog.Logger
}

// NewLoader constructs a loader rooted at dir. A nil fs means the host
// filesystem.
func NewLoader(fs afero.Fs, dir string, logger *slog.Logger) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs, dir: dir, logger: logging.NewComponentLogger(logger, "content")}
}

// Load returns every readable record, news first, then tournaments, each
// collection ordered by file name. Missing collections and malformed records
// are logged and skipped.
func (l *Loader) Load() ([]Record, error) {
	var records []Record
	for _, contentType := range links.ContentTypes {
		loaded, err := l.LoadType(contentType)
		if err != nil {
			return nil, err
		}
		records = append(records, loaded...)
	}
	return records, nil
}

// LoadType returns the records of a single collection.
func (l *Loader) LoadType(contentType links.ContentType) ([]Record, error) {
	dir := filepath.Join(l.dir, string(contentType))
	exists, err := afero.DirExists(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("inspect content dir %q: %w", dir, err)
	}
	if !exists {
		logging.WarnWithContext(l.logger, "content collection missing", "content_dir_missing",
			logging.String(logging.FieldContentType, string(contentType)),
			logging.String(logging.FieldPath, dir),
			logging.String(logging.FieldErrorHint, "check paths.content_dir"),
			logging.String(logging.FieldImpact, "collection not linked"))
		return nil, nil
	}

	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir %q: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	records := make([]Record, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		record, err := l.readRecord(path)
		if err != nil {
			logging.WarnWithContext(l.logger, "skipping malformed content record", "content_record_invalid",
				logging.String(logging.FieldContentType, string(contentType)),
				logging.String(logging.FieldPath, path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "fix the JSON file"),
				logging.String(logging.FieldImpact, "record not linked"))
			continue
		}
		record.Type = contentType
		record.ID = strings.TrimSuffix(name, ".json")
		record.Path = path
		records = append(records, record)
	}

	l.logger.Debug("content collection loaded",
		logging.String(logging.FieldContentType, string(contentType)),
		logging.Int("record_count", len(records)))
	return records, nil
}

func (l *Loader) readRecord(path string) (Record, error) {
	raw, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return Record{}, err
	}
	var file recordFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return Record{}, fmt.Errorf("decode: %w", err)
	}
	if file.Title == nil {
		return Record{}, errors.New("missing title")
	}
	record := Record{Title: *file.Title}
	if file.Date != nil {
		record.Date = *file.Date
	}
	if file.DateFormatted != nil {
		record.DateFormatted = *file.DateFormatted
	}
	return record, nil
}
