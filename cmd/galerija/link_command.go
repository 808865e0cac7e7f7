package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"galerija/internal/content"
	"galerija/internal/linking"
	"galerija/internal/matcher"
)

func newLinkCommand(ctx *commandContext) *cobra.Command {
	var auto bool
	var threshold float64
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link news and tournament records to gallery events",
		Long: "Walk every content record that has no gallery link yet and pick a gallery event for it.\n" +
			"Interactive mode asks for each record; --auto accepts the best candidate when it\n" +
			"reaches the threshold and skips the rest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Linking.AutoThreshold
			}
			if threshold <= matcher.MinScore || threshold > 100 {
				return fmt.Errorf("threshold must be greater than %.0f and at most 100", matcher.MinScore)
			}

			_, index, err := ctx.buildGallery(cmd)
			if err != nil {
				return err
			}
			records, err := content.NewLoader(ctx.fs, cfg.Paths.ContentDir, logger).Load()
			if err != nil {
				return err
			}
			store, err := ctx.linkStore(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var decider linking.Decider
			if auto {
				decider = linking.ThresholdDecider{Threshold: threshold}
				if !jsonOutput {
					fmt.Fprintf(out, "Auto mode: linking candidates scoring at least %.0f\n", threshold)
				}
			} else {
				if jsonOutput {
					return errors.New("--json requires --auto")
				}
				decider = linking.NewPromptDecider(cmd.InOrStdin(), out, shouldColorize(out))
			}
			if !jsonOutput {
				fmt.Fprintf(out, "Content records: %d  Gallery events: %d\n", len(records), index.Len())
			}

			workflow := linking.NewWorkflow(store, index, decider, linking.Options{
				TopN:      cfg.Matching.TopN,
				SaveEvery: cfg.Linking.SaveEvery,
				Operator:  cfg.OperatorName(),
				Matcher:   dateAwareMatcher(logger),
				Logger:    logger,
			})
			summary, runErr := workflow.Run(cmd.Context(), records)

			if jsonOutput {
				if err := writeJSON(cmd, summary); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderLinkSummary(summary))
				fmt.Fprintf(out, "Links saved to %s\n", store.Path())
			}
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&auto, "auto", "a", false, "Accept strong matches without prompting")
	cmd.Flags().Float64Var(&threshold, "threshold", linking.DefaultAutoThreshold, "Minimum score accepted in auto mode (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the session summary as JSON (auto mode only)")
	return cmd
}

func renderLinkSummary(summary linking.Summary) string {
	rows := [][]string{
		{"Records", strconv.Itoa(summary.Total)},
		{"Linked (new)", strconv.Itoa(summary.Linked)},
		{"Already linked", strconv.Itoa(summary.AlreadyLinked)},
		{"Skipped", strconv.Itoa(summary.Skipped)},
		{"No matches", strconv.Itoa(summary.NoMatches)},
		{"Failed", strconv.Itoa(summary.Failed)},
		{"Total links", strconv.Itoa(summary.LinkCount)},
	}
	if summary.Stopped {
		rows = append(rows, []string{"Stopped early", "yes"})
	}
	return renderTable([]string{"Summary", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}
