// Package main is the entry point for the studio CLI/TUI.
package main

import (
	"os"

	"github.com/text2song/studio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
