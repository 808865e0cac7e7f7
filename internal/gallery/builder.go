package gallery

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"galerija/internal/eventname"
	"galerija/internal/logging"
	"galerija/internal/scanner"
	"galerija/internal/textutil"
)

const (
	directImagesSlug = "razne-slike"
	// DefaultURLPrefix is the public URL of the gallery root.
	DefaultURLPrefix = "/images/Galerija"
)

// Builder assembles Data from the gallery folder tree.
type Builder struct {
	scanner   *scanner.Scanner
	root      string
	urlPrefix string
	logger    *slog.Logger
}

// NewBuilder constructs a builder reading root through fs. An empty
// urlPrefix falls back to DefaultURLPrefix.
func NewBuilder(fs afero.Fs, root, urlPrefix string, logger *slog.Logger) *Builder {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	return &Builder{
		scanner:   scanner.New(fs, logger),
		root:      root,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		logger:    logging.NewComponentLogger(logger, "gallery"),
	}
}

// Build scans the gallery root and returns the assembled model.
func (b *Builder) Build() (*Data, error) {
	years, err := b.scanner.Scan(b.root)
	if err != nil {
		return nil, fmt.Errorf("scan gallery: %w", err)
	}
	return b.FromScan(years), nil
}

// FromScan assembles the model from already scanned years. Period and event
// IDs use the website's identifier slugs; IDs that collide within one build
// are suffixed with -2, -3 and so on in build order. Event slugs are
// transliterated for readability and are not required to be unique.
func (b *Builder) FromScan(years []scanner.Year) *Data {
	data := &Data{Periods: make([]Period, 0, len(years))}
	seen := make(map[string]int)
	periodSeen := make(map[string]int)
	minYear, maxYear := 0, 0

	for _, year := range years {
		period := b.buildPeriod(year, seen)
		period.ID = b.uniqueID(period.ID, year.YearPath, periodSeen)
		data.Periods = append(data.Periods, period)
		data.TotalImages += period.TotalImages
		data.TotalEvents += period.EventCount

		if year.YearNumber > 0 {
			if minYear == 0 || year.YearNumber < minYear {
				minYear = year.YearNumber
			}
			if year.YearNumber > maxYear {
				maxYear = year.YearNumber
			}
		}
	}
	if maxYear > 0 {
		data.YearRange = fmt.Sprintf("%d-%d", minYear, maxYear)
	}

	b.logger.Info("gallery built",
		logging.Int("period_count", len(data.Periods)),
		logging.Int("event_count", data.TotalEvents),
		logging.Int("image_count", data.TotalImages),
		logging.String("year_range", data.YearRange))
	return data
}

func (b *Builder) buildPeriod(year scanner.Year, seen map[string]int) Period {
	events := make([]Event, 0, len(year.Events)+1)
	for _, scanned := range year.Events {
		event := b.buildEvent(scanned, year.YearNumber)
		event.ID = b.uniqueID(event.ID, event.FolderPath, seen)
		events = append(events, event)
	}

	var directImages []Image
	if len(year.DirectImages) > 0 {
		event := b.buildDirectImagesEvent(year)
		event.ID = b.uniqueID(event.ID, event.FolderPath, seen)
		events = append(events, event)
		directImages = event.Images
	}

	total := 0
	for _, event := range events {
		total += event.ImageCount
	}

	accent := AccentBlue
	if year.YearNumber%2 == 0 {
		accent = AccentAmber
	}

	description := fmt.Sprintf("Galerija iz %s. godine", year.Year)
	if len(events) > 0 {
		description = fmt.Sprintf("Pregled događaja i slika iz %s. godine", year.Year)
	}

	return Period{
		ID:           textutil.SlugifyID(year.Year),
		Year:         year.Year,
		YearNumber:   year.YearNumber,
		Title:        "Galerija " + year.Year,
		Description:  description,
		AccentColor:  accent,
		Events:       events,
		DirectImages: directImages,
		TotalImages:  total,
		EventCount:   len(events),
	}
}

func (b *Builder) buildEvent(scanned scanner.Event, yearNumber int) Event {
	parsed := eventname.Parse(scanned.FolderName, yearNumber)
	images := b.buildImages(scanned.FolderPath, scanned.Images, parsed.Title)
	return Event{
		ID:            textutil.SlugifyID(strconv.Itoa(yearNumber) + "-" + scanned.FolderName),
		Slug:          textutil.Slugify(scanned.FolderName),
		Title:         parsed.Title,
		Date:          parsed.Date,
		DateRange:     parsed.DateRange,
		Year:          yearNumber,
		Month:         parsed.Month,
		RawFolderName: scanned.FolderName,
		FolderPath:    scanned.FolderPath,
		Images:        images,
		CoverImage:    images[0],
		ImageCount:    len(images),
		Category:      parsed.Category,
		EventType:     parsed.EventType,
	}
}

func (b *Builder) buildDirectImagesEvent(year scanner.Year) Event {
	title := "Razne slike iz " + year.Year
	images := b.buildImages(year.YearPath, year.DirectImages, title)
	return Event{
		ID:            textutil.SlugifyID(strconv.Itoa(year.YearNumber) + "-" + directImagesSlug),
		Slug:          directImagesSlug,
		Title:         title,
		Year:          year.YearNumber,
		RawFolderName: year.Year,
		FolderPath:    year.YearPath,
		Images:        images,
		CoverImage:    images[0],
		ImageCount:    len(images),
		Category:      eventname.CategoryOpste,
		EventType:     eventname.EventMixed,
	}
}

func (b *Builder) buildImages(folderPath string, fileNames []string, title string) []Image {
	urlPath := b.urlPath(folderPath)
	images := make([]Image, 0, len(fileNames))
	for i, name := range fileNames {
		images = append(images, Image{
			FileName: name,
			Path:     urlPath,
			FullPath: urlPath + "/" + name,
			Alt:      fmt.Sprintf("%s - %d", title, i+1),
			Index:    i + 1,
		})
	}
	return images
}

// urlPath maps a folder on disk to its public URL below the prefix.
func (b *Builder) urlPath(folderPath string) string {
	rel, err := filepath.Rel(b.root, folderPath)
	if err != nil || rel == "." {
		return b.urlPrefix
	}
	return path.Join(b.urlPrefix, filepath.ToSlash(rel))
}

func (b *Builder) uniqueID(id, folderPath string, seen map[string]int) string {
	seen[id]++
	count := seen[id]
	if count == 1 {
		return id
	}
	for {
		candidate := fmt.Sprintf("%s-%d", id, count)
		if seen[candidate] == 0 {
			seen[candidate] = 1
			logging.WarnWithContext(b.logger, "duplicate gallery id", "gallery_id_collision",
				logging.String("gallery_id", candidate),
				logging.String("original_id", id),
				logging.String(logging.FieldPath, folderPath),
				logging.String(logging.FieldErrorHint, "rename one of the folders to get a stable id"),
				logging.String(logging.FieldImpact, "id suffixed; links to it depend on build order"))
			return candidate
		}
		count++
		seen[id] = count
	}
}
