package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var preferCmd = &cobra.Command{
	Use:   "prefer [chosen-audio-id] [rejected-audio-id]",
	Short: "Record that one sample beats another",
	Long: `Record a pairwise preference between two samples of the same prompt.
Margin runs 1 (slightly better) to 5 (much better).`,
	Args: cobra.ExactArgs(2),
	RunE: runPrefer,
}

var preferStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show preference statistics",
	RunE:  runPreferStats,
}

var (
	preferPrompt string
	preferMargin float64
	preferNotes  string
)

func init() {
	preferCmd.Flags().StringVar(&preferPrompt, "prompt", "", "prompt ID the samples belong to (required)")
	preferCmd.Flags().Float64Var(&preferMargin, "margin", 0, "preference strength 1-5")
	preferCmd.Flags().StringVar(&preferNotes, "notes", "", "free-form notes")
	_ = preferCmd.MarkFlagRequired("prompt")

	preferCmd.AddCommand(preferStatsCmd)
}

func runPrefer(cmd *cobra.Command, args []string) error {
	if args[0] == args[1] {
		return fmt.Errorf("chosen and rejected samples must differ")
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	req := api.PreferencePairCreate{
		PromptID:        preferPrompt,
		ChosenAudioID:   args[0],
		RejectedAudioID: args[1],
		Notes:           preferNotes,
	}
	if preferMargin > 0 {
		req.Margin = &preferMargin
	}

	pair, err := client.CreatePreference(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s over %s\n", styleSuccess.Render("Recorded:"), shortID(pair.ChosenAudioID), shortID(pair.RejectedAudioID))
	return nil
}

func runPreferStats(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	stats, err := client.GetPreferenceStats(context.Background())
	if err != nil {
		return err
	}

	printField("Pairs", fmt.Sprintf("%d", stats.TotalPairs))
	printField("Prompts", fmt.Sprintf("%d", stats.UniquePrompts))
	printField("Samples", fmt.Sprintf("%d", stats.UniqueAudios))
	printField("Avg margin", floatOrDash(stats.AverageMargin, "%.2f"))
	return nil
}
