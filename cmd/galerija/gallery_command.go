package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"galerija/internal/gallery"
)

func newGalleryCommand(ctx *commandContext) *cobra.Command {
	var showEvents bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Build the gallery model and show a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _, err := ctx.buildGallery(cmd)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, data)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Periods: %d  Events: %d  Images: %d  Years: %s\n",
				len(data.Periods), data.TotalEvents, data.TotalImages, valueOrDash(data.YearRange))
			if len(data.Periods) == 0 {
				fmt.Fprintln(out, "No gallery folders found")
				return nil
			}
			fmt.Fprintln(out, renderPeriodTable(data))
			if showEvents {
				fmt.Fprintln(out, renderEventTable(data))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showEvents, "events", false, "List every event with its id")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full gallery model as JSON")
	return cmd
}

func renderPeriodTable(data *gallery.Data) string {
	rows := make([][]string, 0, len(data.Periods))
	for _, p := range data.Periods {
		rows = append(rows, []string{
			p.Year,
			strconv.Itoa(p.EventCount),
			strconv.Itoa(p.TotalImages),
			strconv.Itoa(len(p.DirectImages)),
		})
	}
	return renderTable(
		[]string{"Year", "Events", "Images", "Loose"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)
}

func renderEventTable(data *gallery.Data) string {
	var rows [][]string
	for _, p := range data.Periods {
		for _, e := range p.Events {
			date := e.DateRange
			if date == "" {
				date = e.Date
			}
			rows = append(rows, []string{
				e.ID,
				e.Title,
				valueOrDash(date),
				string(e.EventType),
				string(e.Category),
				strconv.Itoa(e.ImageCount),
			})
		}
	}
	return renderTable(
		[]string{"ID", "Title", "Date", "Type", "Category", "Images"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}
