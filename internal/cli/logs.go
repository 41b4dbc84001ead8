package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
	"github.com/text2song/studio/internal/config"
)

var logsCmd = &cobra.Command{
	Use:   "logs [run-id]",
	Short: "Show training-run logs",
	Long: `Dump the log history of a training run. With --follow the command
tails the live stream until the run finishes. With --save a copy is kept
under ~/.t2s-studio/logs for offline reading.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

var logsSavedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List locally saved run logs",
	RunE:  runLogsSaved,
}

var logsViewCmd = &cobra.Command{
	Use:   "view [run-id]",
	Short: "Print a locally saved run log",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogsView,
}

var (
	logsFollow bool
	logsSave   bool
)

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "tail the live log stream")
	logsCmd.Flags().BoolVar(&logsSave, "save", false, "save a local copy after printing")

	logsCmd.AddCommand(logsSavedCmd)
	logsCmd.AddCommand(logsViewCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	if err := validateID("run", args[0]); err != nil {
		return err
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()
	runID := args[0]

	history, err := client.GetRunLogs(ctx, runID)
	if err != nil {
		return err
	}
	content, err := history.Bytes()
	if err != nil {
		return err
	}
	os.Stdout.Write(content)

	if logsFollow {
		streamed, err := followRunLogs(ctx, client, runID)
		if err != nil {
			return err
		}
		content = append(content, streamed...)
	}

	if logsSave {
		entry, err := config.WriteRunLog(runID, "", "", "", content)
		if err != nil {
			return fmt.Errorf("failed to save log: %w", err)
		}
		fmt.Fprintf(os.Stderr, "%s %d bytes for %s\n", styleSuccess.Render("Saved"), entry.Size, shortID(runID))
	}
	return nil
}

// followRunLogs tails the SSE stream to stdout and returns everything it
// printed so --save captures the full log.
func followRunLogs(ctx context.Context, client *api.Client, runID string) ([]byte, error) {
	events, errs := client.StreamRunLogs(ctx, runID)
	var streamed []byte
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return streamed, nil
			}
			switch ev.Type {
			case api.SSELog:
				os.Stdout.Write(ev.Chunk)
				streamed = append(streamed, ev.Chunk...)
			case api.SSEDone:
				if ev.ExitCode != nil && *ev.ExitCode != 0 {
					fmt.Fprintf(os.Stderr, "%s\n", styleError.Render(fmt.Sprintf("Run exited with code %d", *ev.ExitCode)))
				}
				return streamed, nil
			}
		case err, ok := <-errs:
			if ok && err != nil {
				return streamed, fmt.Errorf("log stream failed: %w", err)
			}
		}
	}
}

func runLogsSaved(cmd *cobra.Command, args []string) error {
	entries, err := config.ListRunLogs()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No saved logs. Run 'studio logs --save' to keep one.")
		return nil
	}

	for _, e := range entries {
		name := e.RunName
		if name == "" {
			name = shortID(e.RunID)
		}
		fmt.Printf("%s  %-20s %-10s %6d bytes  %s\n", styleHint.Render(shortID(e.RunID)), name, e.Status, e.Size, styleLabel.Render(e.SavedAt))
	}
	return nil
}

func runLogsView(cmd *cobra.Command, args []string) error {
	_, content, err := config.ReadRunLog(args[0])
	if err != nil {
		return err
	}
	os.Stdout.Write(content)
	return nil
}
