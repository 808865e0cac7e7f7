package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGallery()
	c.normalizeMatching()
	c.normalizeLinking()
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		key    string
		target *string
	}{
		{"GALERIJA_GALLERY_ROOT", &c.Paths.GalleryRoot},
		{"GALERIJA_CONTENT_DIR", &c.Paths.ContentDir},
		{"GALERIJA_LINKS_FILE", &c.Paths.LinksFile},
	}
	for _, o := range overrides {
		if value, ok := os.LookupEnv(o.key); ok && strings.TrimSpace(value) != "" {
			*o.target = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.GalleryRoot) == "" {
		c.Paths.GalleryRoot = defaultGalleryRoot
	}
	if c.Paths.GalleryRoot, err = expandPath(c.Paths.GalleryRoot); err != nil {
		return fmt.Errorf("paths.gallery_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.ContentDir) == "" {
		c.Paths.ContentDir = defaultContentDir
	}
	if c.Paths.ContentDir, err = expandPath(c.Paths.ContentDir); err != nil {
		return fmt.Errorf("paths.content_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LinksFile) == "" {
		c.Paths.LinksFile = defaultLinksFile
	}
	if c.Paths.LinksFile, err = expandPath(c.Paths.LinksFile); err != nil {
		return fmt.Errorf("paths.links_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.CatalogPath, err = expandPath(strings.TrimSpace(c.Paths.CatalogPath)); err != nil {
		return fmt.Errorf("paths.catalog_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeGallery() {
	prefix := strings.TrimSpace(c.Gallery.URLPrefix)
	if prefix == "" {
		prefix = defaultURLPrefix
	}
	prefix = strings.TrimRight(prefix, "/")
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	c.Gallery.URLPrefix = prefix
}

func (c *Config) normalizeMatching() {
	if c.Matching.TopN <= 0 {
		c.Matching.TopN = defaultTopN
	}
}

func (c *Config) normalizeLinking() {
	if c.Linking.SaveEvery <= 0 {
		c.Linking.SaveEvery = defaultSaveEvery
	}
	c.Linking.Operator = strings.TrimSpace(c.Linking.Operator)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
