package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"galerija/internal/logging"
	"galerija/internal/matcher"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var date string
	var topN int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "match <title>",
		Short: "Rank gallery events for a content title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}
			_, index, err := ctx.buildGallery(cmd)
			if err != nil {
				return err
			}
			if topN <= 0 {
				topN = cfg.Matching.TopN
			}

			title := strings.Join(args, " ")
			results := dateAwareMatcher(logger).TopMatches(title, strings.TrimSpace(date), index.Events(), topN)
			if jsonOutput {
				if results == nil {
					results = []matcher.Result{}
				}
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No matching gallery events")
				return nil
			}
			rows := make([][]string, 0, len(results))
			for i, r := range results {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					formatScore(r.Score),
					r.Event.ID,
					r.Event.Title,
					strings.Join(r.Reasons, "; "),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Score", "Event", "Title", "Reasons"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Content date (YYYY-MM-DD or DD.MM.YYYY)")
	cmd.Flags().IntVarP(&topN, "top", "n", 0, "Number of candidates to show (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print candidates as JSON")
	return cmd
}

// dateAwareMatcher logs unparseable dates at debug level so bad content
// records can be found and fixed.
func dateAwareMatcher(logger *slog.Logger) matcher.Matcher {
	return matcher.Matcher{
		DateWarning: func(value string) {
			logger.Debug("unparseable date ignored",
				logging.String(logging.FieldEventType, "date_unparseable"),
				logging.String("date", value))
		},
	}
}
