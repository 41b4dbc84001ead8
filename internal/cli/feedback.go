package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Inspect collected feedback",
}

var feedbackListCmd = &cobra.Command{
	Use:     "list [audio-id]",
	Aliases: []string{"ls"},
	Short:   "List feedback records for a sample",
	Args:    cobra.ExactArgs(1),
	RunE:    runFeedbackList,
}

var feedbackStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show feedback statistics for a sample or adapter",
	RunE:  runFeedbackStats,
}

var feedbackSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the overall feedback summary",
	RunE:  runFeedbackSummary,
}

var (
	feedbackStatsAudio   string
	feedbackStatsAdapter string
)

func init() {
	feedbackStatsCmd.Flags().StringVar(&feedbackStatsAudio, "audio", "", "scope to one audio sample")
	feedbackStatsCmd.Flags().StringVar(&feedbackStatsAdapter, "adapter", "", "scope to one adapter")

	feedbackCmd.AddCommand(feedbackListCmd)
	feedbackCmd.AddCommand(feedbackStatsCmd)
	feedbackCmd.AddCommand(feedbackSummaryCmd)
}

func runFeedbackList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListFeedback(context.Background(), args[0], 1, 50)
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No feedback yet.")
		return nil
	}

	for _, f := range list.Items {
		switch {
		case f.Rating != nil:
			fmt.Printf("  %s %.0f/5 (%s)\n", styleLabel.Render("rating"), *f.Rating, orDash(f.RatingCriterion))
		case f.PreferredOver != nil:
			fmt.Printf("  %s over %s\n", styleLabel.Render("preferred"), shortID(*f.PreferredOver))
		case len(f.Tags) > 0:
			fmt.Printf("  %s %v\n", styleLabel.Render("tags"), f.Tags)
		}
	}
	fmt.Printf("\n%s\n", styleHint.Render(fmt.Sprintf("%d records", list.Total)))
	return nil
}

func runFeedbackStats(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	stats, err := client.GetFeedbackStats(context.Background(), feedbackStatsAudio, feedbackStatsAdapter)
	if err != nil {
		return err
	}

	printField("Ratings", fmt.Sprintf("%d", stats.RatingCount))
	printField("Average", floatOrDash(stats.AverageRating, "%.2f"))
	printField("Wins", fmt.Sprintf("%d", stats.PreferenceWins))
	printField("Losses", fmt.Sprintf("%d", stats.PreferenceLosses))
	printField("Win rate", floatOrDash(stats.WinRate, "%.2f"))
	return nil
}

func runFeedbackSummary(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	summary, err := client.GetFeedbackSummary(context.Background())
	if err != nil {
		return err
	}

	printField("Feedback", fmt.Sprintf("%d", summary.TotalFeedback))
	printField("Ratings", fmt.Sprintf("%d", summary.TotalRatings))
	printField("Preferences", fmt.Sprintf("%d", summary.TotalPreferences))
	printField("High-rated", fmt.Sprintf("%d samples", summary.HighRatedSamples))
	return nil
}
