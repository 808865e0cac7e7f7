package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"galerija/internal/catalog"
	"galerija/internal/config"
	"galerija/internal/logging"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the gallery and its links to a SQLite catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(dbPath)
			if target == "" {
				target = cfg.Paths.CatalogPath
			}
			if target == "" {
				return errors.New("no catalog path: pass --db or set paths.catalog_path")
			}
			if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve catalog path: %w", err)
			}

			data, _, err := ctx.buildGallery(cmd)
			if err != nil {
				return err
			}
			linkData, err := loadLinks(ctx, cmd)
			if err != nil {
				return err
			}

			db, err := catalog.Open(cmd.Context(), target)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Export(cmd.Context(), data, linkData, time.Now()); err != nil {
				return fmt.Errorf("export catalog: %w", err)
			}
			stats, err := db.Stats(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("catalog exported",
				logging.String(logging.FieldPath, target),
				logging.Int("event_count", stats.Events),
				logging.Int("link_count", stats.Links))

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d periods, %d events, %d images and %d links to %s\n",
				stats.Periods, stats.Events, stats.Images, stats.Links, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite catalog path (default paths.catalog_path)")
	return cmd
}
