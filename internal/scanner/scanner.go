package scanner

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"galerija/internal/logging"
)

// imageExtensions is the allow-list of image suffixes. Matching is
// case-sensitive, so upper-case variants are listed explicitly.
var imageExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp",
	".JPG", ".JPEG", ".PNG", ".GIF", ".WEBP",
}

// Event is one event folder with its image file names in lexicographic order.
type Event struct {
	FolderName string   `json:"folderName"`
	FolderPath string   `json:"folderPath"`
	Images     []string `json:"images"`
}

// Year is one year folder with its event folders and loose images.
type Year struct {
	Year         string   `json:"year"`
	YearNumber   int      `json:"yearNumber"`
	YearPath     string   `json:"yearPath"`
	Events       []Event  `json:"events"`
	DirectImages []string `json:"directImages"`
}

// Scanner reads gallery folders from a filesystem.
type Scanner struct {
	fs     afero.Fs
	logger *slog.Logger
}

// New constructs a scanner over fs. A nil fs means the host filesystem.
func New(fs afero.Fs, logger *slog.Logger) *Scanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Scanner{
		fs:     fs,
		logger: logging.NewComponentLogger(logger, "scanner"),
	}
}

// IsImageFile reports whether name carries an allowed image extension.
func IsImageFile(name string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ParseYearLabel parses the leading integer of a year folder name the way
// JavaScript parseInt does: leading whitespace and an optional sign are
// allowed and trailing text is ignored, so "2003 i pre" yields 2003.
func ParseYearLabel(label string) (int, bool) {
	s := strings.TrimLeft(label, " \t\r\n")
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	n := 0
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	return sign * n, true
}

// Scan walks root and returns the year folders sorted by year descending.
// A missing root yields an empty result.
func (s *Scanner) Scan(root string) ([]Year, error) {
	exists, err := afero.DirExists(s.fs, root)
	if err != nil {
		return nil, fmt.Errorf("inspect gallery root %q: %w", root, err)
	}
	if !exists {
		logging.WarnWithContext(s.logger, "gallery root does not exist", "gallery_root_missing",
			logging.String(logging.FieldPath, root),
			logging.String(logging.FieldErrorHint, "check paths.gallery_root"),
			logging.String(logging.FieldImpact, "gallery will be empty"))
		return []Year{}, nil
	}

	entries, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return nil, fmt.Errorf("read gallery root %q: %w", root, err)
	}

	years := make([]Year, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		year, ok := s.scanYear(filepath.Join(root, entry.Name()), entry.Name())
		if ok {
			years = append(years, year)
		}
	}

	sort.SliceStable(years, func(i, j int) bool {
		return years[i].YearNumber > years[j].YearNumber
	})

	s.logger.Debug("gallery folders scanned",
		logging.String(logging.FieldPath, root),
		logging.Int("year_count", len(years)))
	return years, nil
}

func (s *Scanner) scanYear(yearPath, label string) (Year, bool) {
	yearNumber, ok := ParseYearLabel(label)
	if !ok {
		s.logger.Debug("skipping non-year folder", logging.String(logging.FieldPath, yearPath))
		return Year{}, false
	}

	entries, err := afero.ReadDir(s.fs, yearPath)
	if err != nil {
		logging.WarnWithContext(s.logger, "year folder unreadable", "scan_year_failed",
			logging.String(logging.FieldPath, yearPath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check folder permissions"),
			logging.String(logging.FieldImpact, "year omitted from gallery"))
		return Year{}, false
	}

	year := Year{
		Year:         label,
		YearNumber:   yearNumber,
		YearPath:     yearPath,
		Events:       []Event{},
		DirectImages: []string{},
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			event, err := s.scanEvent(filepath.Join(yearPath, name), name)
			if err != nil {
				logging.WarnWithContext(s.logger, "event folder unreadable", "scan_event_failed",
					logging.String(logging.FieldPath, filepath.Join(yearPath, name)),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "check folder permissions"),
					logging.String(logging.FieldImpact, "event omitted from gallery"))
				continue
			}
			if len(event.Images) == 0 {
				s.logger.Debug("skipping event folder without images", logging.String(logging.FieldPath, event.FolderPath))
				continue
			}
			year.Events = append(year.Events, event)
			continue
		}
		if IsImageFile(name) {
			year.DirectImages = append(year.DirectImages, name)
		}
	}
	sort.Strings(year.DirectImages)
	return year, true
}

func (s *Scanner) scanEvent(eventPath, name string) (Event, error) {
	entries, err := afero.ReadDir(s.fs, eventPath)
	if err != nil {
		return Event{}, err
	}
	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		images = append(images, entry.Name())
	}
	sort.Strings(images)
	return Event{
		FolderName: name,
		FolderPath: eventPath,
		Images:     images,
	}, nil
}
