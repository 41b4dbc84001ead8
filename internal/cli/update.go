package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update studio to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking for updates...")

		result, err := updater.CheckForUpdate()
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if !result.Available {
			fmt.Printf("Already up to date (v%s).\n", result.CurrentVersion)
			return nil
		}

		fmt.Printf("%s v%s → v%s\n", styleUpdate.Render("Update available:"), result.CurrentVersion, result.LatestVersion)
		fmt.Printf("Release: %s\n", result.ReleaseURL)

		asset := updater.FindAsset(result.Release, updater.CLIAssetName())
		if asset == nil {
			return fmt.Errorf("binary not found in release (expected %s)", updater.CLIAssetName())
		}

		fmt.Printf("Downloading %s...\n", asset.Name)
		tmpPath, err := updater.DownloadAsset(asset)
		if err != nil {
			return fmt.Errorf("failed to download: %w", err)
		}
		defer os.Remove(tmpPath)

		selfPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to find self: %w", err)
		}
		selfPath, err = filepath.EvalSymlinks(selfPath)
		if err != nil {
			return fmt.Errorf("failed to resolve self: %w", err)
		}

		fmt.Println("Installing...")
		if err := updater.ReplaceBinary(selfPath, tmpPath); err != nil {
			return fmt.Errorf("failed to install update: %w", err)
		}

		fmt.Printf("%s v%s.\n", styleSuccess.Render("Updated to"), result.LatestVersion)
		return nil
	},
}
