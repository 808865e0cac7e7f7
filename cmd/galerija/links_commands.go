package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"galerija/internal/catalog"
	"galerija/internal/config"
	"galerija/internal/linking"
	"galerija/internal/links"
)

func newLinksCommand(ctx *commandContext) *cobra.Command {
	linksCmd := &cobra.Command{
		Use:   "links",
		Short: "Inspect the content-to-gallery link file",
	}
	linksCmd.AddCommand(newLinksListCommand(ctx))
	linksCmd.AddCommand(newLinksShowCommand(ctx))
	linksCmd.AddCommand(newLinksCheckCommand(ctx))
	return linksCmd
}

func loadLinks(ctx *commandContext, cmd *cobra.Command) (*links.Data, error) {
	store, err := ctx.linkStore(cmd)
	if err != nil {
		return nil, err
	}
	data, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}
	return data, nil
}

func parseContentType(value string) (links.ContentType, error) {
	contentType := links.ContentType(strings.ToLower(strings.TrimSpace(value)))
	if !contentType.Valid() {
		return "", fmt.Errorf("unknown content type %q (expected vesti or turniri)", value)
	}
	return contentType, nil
}

func newLinksListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored links",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadLinks(ctx, cmd)
			if err != nil {
				return err
			}
			selected := data.Links
			if typeFilter != "" {
				contentType, err := parseContentType(typeFilter)
				if err != nil {
					return err
				}
				selected = make([]links.Link, 0, len(data.Links))
				for _, link := range data.Links {
					if link.ContentType == contentType {
						selected = append(selected, link)
					}
				}
			}
			if jsonOutput {
				return writeJSON(cmd, selected)
			}

			out := cmd.OutOrStdout()
			if len(selected) == 0 {
				fmt.Fprintln(out, "No links")
				return nil
			}
			rows := make([][]string, 0, len(selected))
			for _, link := range selected {
				confirmed := "-"
				if !link.ConfirmedAt.IsZero() {
					confirmed = link.ConfirmedAt.Local().Format("2006-01-02 15:04")
				}
				rows = append(rows, []string{
					string(link.ContentType),
					link.ContentID,
					link.GalleryEventID,
					string(link.MatchType),
					formatConfidence(link.Confidence),
					valueOrDash(link.ConfirmedBy),
					confirmed,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Type", "Content", "Event", "Match", "Confidence", "By", "Confirmed"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print links as JSON")
	cmd.Flags().StringVar(&typeFilter, "type", "", "Only show links of this content type (vesti, turniri)")
	return cmd
}

type shownLink struct {
	EventID    string
	Title      string
	Year       int
	ImageCount int
	Cover      string
	MatchType  links.MatchType
	Confidence float64
}

func newLinksShowCommand(ctx *commandContext) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "show <type> <id>",
		Short: "Show the gallery event linked to a content record",
		Long: "Resolve a content record to its gallery event. By default the link file and a\n" +
			"fresh scan of the gallery are used; --db answers from an exported catalog instead.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			contentType, err := parseContentType(args[0])
			if err != nil {
				return err
			}
			contentID := strings.TrimSpace(args[1])

			var shown shownLink
			if strings.TrimSpace(dbPath) != "" {
				shown, err = showFromCatalog(ctx, cmd, dbPath, contentType, contentID)
			} else {
				shown, err = showFromGallery(ctx, cmd, contentType, contentID)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Content:    %s/%s\n", contentType, contentID)
			fmt.Fprintf(out, "Event:      %s\n", shown.EventID)
			fmt.Fprintf(out, "Title:      %s (%d)\n", shown.Title, shown.Year)
			fmt.Fprintf(out, "Images:     %d\n", shown.ImageCount)
			fmt.Fprintf(out, "Cover:      %s\n", shown.Cover)
			fmt.Fprintf(out, "Match:      %s (confidence %s)\n", shown.MatchType, formatConfidence(shown.Confidence))
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "Answer from this exported SQLite catalog")
	return cmd
}

func showFromGallery(ctx *commandContext, cmd *cobra.Command, contentType links.ContentType, contentID string) (shownLink, error) {
	data, err := loadLinks(ctx, cmd)
	if err != nil {
		return shownLink{}, err
	}
	_, index, err := ctx.buildGallery(cmd)
	if err != nil {
		return shownLink{}, err
	}
	link, ok := data.Find(contentType, contentID)
	if !ok {
		return shownLink{}, fmt.Errorf("%s/%s is not linked", contentType, contentID)
	}
	event, ok := linking.NewResolver(data, index).Resolve(contentType, contentID)
	if !ok {
		return shownLink{}, fmt.Errorf("%s/%s links to %q, which is not in the gallery", contentType, contentID, link.GalleryEventID)
	}
	return shownLink{
		EventID:    event.ID,
		Title:      event.Title,
		Year:       event.Year,
		ImageCount: event.ImageCount,
		Cover:      event.CoverImage.FullPath,
		MatchType:  link.MatchType,
		Confidence: link.Confidence,
	}, nil
}

func showFromCatalog(ctx *commandContext, cmd *cobra.Command, dbPath string, contentType links.ContentType, contentID string) (shownLink, error) {
	target, err := config.ExpandPath(strings.TrimSpace(dbPath))
	if err != nil {
		return shownLink{}, fmt.Errorf("resolve catalog path: %w", err)
	}
	exists, err := afero.Exists(ctx.fs, target)
	if err != nil {
		return shownLink{}, fmt.Errorf("check catalog path: %w", err)
	}
	if !exists {
		return shownLink{}, fmt.Errorf("no catalog at %s (run 'galerija export' first)", target)
	}

	db, err := catalog.Open(cmd.Context(), target)
	if err != nil {
		return shownLink{}, err
	}
	defer db.Close()

	linked, ok, err := db.LookupLink(cmd.Context(), contentType, contentID)
	if err != nil {
		return shownLink{}, err
	}
	if !ok {
		return shownLink{}, fmt.Errorf("%s/%s is not linked in %s", contentType, contentID, target)
	}
	if !linked.Found {
		return shownLink{}, fmt.Errorf("%s/%s links to %q, which is not in the catalog", contentType, contentID, linked.GalleryEventID)
	}
	return shownLink{
		EventID:    linked.GalleryEventID,
		Title:      linked.Title,
		Year:       linked.Year,
		ImageCount: linked.ImageCount,
		Cover:      linked.CoverImage,
		MatchType:  linked.MatchType,
		Confidence: linked.Confidence,
	}, nil
}

func newLinksCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report links whose gallery event no longer exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadLinks(ctx, cmd)
			if err != nil {
				return err
			}
			_, index, err := ctx.buildGallery(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			dangling := linking.NewResolver(data, index).Dangling()
			fmt.Fprintln(out, renderStatusLine("Links", statusOK, fmt.Sprintf("%d stored", len(data.Links)), colorize))
			if len(dangling) == 0 {
				fmt.Fprintln(out, renderStatusLine("Gallery events", statusOK, "all links resolve", colorize))
				return nil
			}
			fmt.Fprintln(out, renderStatusLine("Gallery events", statusWarn, fmt.Sprintf("%d links point to missing events", len(dangling)), colorize))
			for _, link := range dangling {
				fmt.Fprintf(out, "    %s/%s -> %s\n", link.ContentType, link.ContentID, link.GalleryEventID)
			}
			return fmt.Errorf("%d dangling links", len(dangling))
		},
	}
}
