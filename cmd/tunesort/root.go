package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tunesort/internal/logging"
	"tunesort/internal/organizer"
	"tunesort/internal/report"
)

// errNoFiles maps to process exit code 2 in main.
var errNoFiles = errors.New("you must specify at least one file")

func newRootCommand() *cobra.Command {
	var configFlag string
	var targetFlag string
	var removeFlag bool
	var summaryFlag bool

	cmdCtx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "tunesort [flags] <file>...",
		Short:         "Organize audio files into artist/album/title by their tags",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errNoFiles
			}

			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			root := strings.TrimSpace(targetFlag)
			if root == "" {
				root = cfg.LibraryDir
			}
			if root == "" {
				return errors.New("target directory required: pass --target-directory or set library_dir in the config")
			}

			removeSource := removeFlag
			if !cmd.Flags().Changed("remove-source-file") {
				removeSource = cfg.RemoveSourceFile
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			ctx := logging.WithAttrs(cmd.Context(), logging.String(logging.FieldRunID, uuid.NewString()))

			reporter := report.New(cmd.OutOrStdout())
			longest := report.LongestName(args)

			org := organizer.New(root, removeSource, logger)
			outcomes := org.Run(ctx, args, func(outcome organizer.Outcome) {
				reporter.Print(report.DisplayName(outcome.Source), longest, outcome)
			})

			if summaryFlag {
				fmt.Fprintln(cmd.OutOrStdout(), report.Summary(outcomes))
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&targetFlag, "target-directory", "t", "", "Directory where to put audio files")
	rootCmd.Flags().BoolVarP(&removeFlag, "remove-source-file", "r", false, "Delete the original file after successful copying")
	rootCmd.Flags().BoolVar(&summaryFlag, "summary", false, "Print a summary table after the batch")

	rootCmd.AddCommand(newConfigCommand(cmdCtx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
