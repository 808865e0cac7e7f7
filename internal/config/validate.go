package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLinking(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.GalleryRoot == "" {
		return errors.New("paths.gallery_root must be set")
	}
	if c.Paths.LinksFile == "" {
		return errors.New("paths.links_file must be set")
	}
	if c.Paths.LinksFile == c.Paths.GalleryRoot {
		return errors.New("paths.links_file must not point at the gallery root")
	}
	return nil
}

func (c *Config) validateLinking() error {
	if c.Linking.AutoThreshold <= 20 || c.Linking.AutoThreshold > 100 {
		return fmt.Errorf("linking.auto_threshold must be in (20, 100], got %v", c.Linking.AutoThreshold)
	}
	if c.Linking.SaveEvery < 1 {
		return errors.New("linking.save_every must be >= 1")
	}
	if c.Matching.TopN < 1 {
		return errors.New("matching.top_n must be >= 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
