package main

import (
	"github.com/spf13/cobra"
)

const (
	groupGallery = "gallery"
	groupLinking = "linking"
	groupSetup   = "setup"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	ctx := newCommandContext(&configFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "galerija",
		Short:         "Build the photo gallery index and link content to gallery events",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupGallery, Title: "Gallery:"},
		&cobra.Group{ID: groupLinking, Title: "Content linking:"},
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
	)
	for _, entry := range []struct {
		group string
		cmd   *cobra.Command
	}{
		{groupGallery, newGalleryCommand(ctx)},
		{groupGallery, newMatchCommand(ctx)},
		{groupGallery, newExportCommand(ctx)},
		{groupLinking, newLinkCommand(ctx)},
		{groupLinking, newLinksCommand(ctx)},
		{groupSetup, newConfigCommand(ctx)},
	} {
		entry.cmd.GroupID = entry.group
		rootCmd.AddCommand(entry.cmd)
	}

	return rootCmd
}
