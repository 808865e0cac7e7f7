package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"galerija/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and check galerija configuration",
	}
	cmd.AddCommand(newConfigInitCommand(ctx), newConfigValidateCommand(ctx))
	return cmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a commented sample configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := initTarget(targetPath)
			if err != nil {
				return err
			}
			exists, err := afero.Exists(ctx.fs, target)
			if err != nil {
				return fmt.Errorf("check config path: %w", err)
			}
			if exists && !overwrite {
				return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
			}
			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(cmd.OutOrStdout(), "Relative paths resolve against the directory galerija runs in, usually the site root.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

func initTarget(flagValue string) (string, error) {
	if strings.TrimSpace(flagValue) == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("determine default config path: %w", err)
		}
		return path, nil
	}
	path, err := config.ExpandPath(strings.TrimSpace(flagValue))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// newConfigValidateCommand loads the configuration itself so that parse and
// validation errors surface here instead of in the persistent pre-run.
func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Load the configuration and report effective settings",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(ctx.configPath())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}

			for _, input := range []struct{ label, dir string }{
				{"Gallery root", cfg.Paths.GalleryRoot},
				{"Content dir", cfg.Paths.ContentDir},
			} {
				kind, message := statusOK, input.dir
				if ok, err := afero.DirExists(ctx.fs, input.dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
					kind, message = statusError, err.Error()
				} else if !ok {
					kind, message = statusWarn, input.dir+" not found"
				}
				fmt.Fprintln(out, renderStatusLine(input.label, kind, message, colorize))
			}

			fmt.Fprint(out, renderTable([]string{"Setting", "Value"}, effectiveSettings(cfg), nil))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func effectiveSettings(cfg *config.Config) [][]string {
	return [][]string{
		{"paths.links_file", cfg.Paths.LinksFile},
		{"paths.log_dir", cfg.Paths.LogDir},
		{"paths.catalog_path", valueOrDash(cfg.Paths.CatalogPath)},
		{"gallery.url_prefix", cfg.Gallery.URLPrefix},
		{"matching.top_n", strconv.Itoa(cfg.Matching.TopN)},
		{"linking.auto_threshold", strconv.FormatFloat(cfg.Linking.AutoThreshold, 'f', -1, 64)},
		{"linking.save_every", strconv.Itoa(cfg.Linking.SaveEvery)},
		{"linking.operator", valueOrDash(cfg.OperatorName())},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
	}
}
