// Package cli implements the studio CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Text2Song Studio client",
	Long: `Text2Song Studio is a client for the Text2Song fine-tuning backend.
It covers the full loop: write prompts, generate samples, collect feedback,
build datasets, run training experiments, and compare adapters.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(abtestCmd)
	rootCmd.AddCommand(adapterCmd)
	rootCmd.AddCommand(audioCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(experimentCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(preferCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
