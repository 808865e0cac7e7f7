package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"galerija/internal/config"
	"galerija/internal/gallery"
	"galerija/internal/links"
	"galerija/internal/logging"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	fs afero.Fs
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
		fs:          afero.NewOsFs(),
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

// loggerFor builds the session logger once. Console records go to the
// command's stderr so stdout stays clean for tables and JSON.
func (c *commandContext) loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, cmd.ErrOrStderr(), c.verbose())
	})
	return c.logger, c.loggerErr
}

// buildGallery scans the configured gallery root.
func (c *commandContext) buildGallery(cmd *cobra.Command) (*gallery.Data, *gallery.Index, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.loggerFor(cmd)
	if err != nil {
		return nil, nil, err
	}
	data, err := gallery.NewBuilder(c.fs, cfg.Paths.GalleryRoot, cfg.Gallery.URLPrefix, logger).Build()
	if err != nil {
		return nil, nil, err
	}
	return data, gallery.NewIndex(data), nil
}

func (c *commandContext) linkStore(cmd *cobra.Command) (*links.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.loggerFor(cmd)
	if err != nil {
		return nil, err
	}
	return links.NewStore(c.fs, cfg.Paths.LinksFile, logger), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
