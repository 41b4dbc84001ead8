package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var rateCmd = &cobra.Command{
	Use:   "rate [audio-id] [rating]",
	Short: "Rate an audio sample 1-5",
	Long: `Submit a quality rating for an audio sample. The rating is 1-5 on a
criterion (overall, melody, rhythm, harmony, coherence, creativity).`,
	Args: cobra.ExactArgs(2),
	RunE: runRate,
}

var rateStatsCmd = &cobra.Command{
	Use:   "stats [audio-id]",
	Short: "Show rating statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRateStats,
}

var (
	rateCriterion string
	rateNotes     string
)

func init() {
	rateCmd.Flags().StringVar(&rateCriterion, "criterion", "overall", "rating criterion")
	rateCmd.Flags().StringVar(&rateNotes, "notes", "", "free-form notes")

	rateCmd.AddCommand(rateStatsCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	rating, err := strconv.ParseFloat(args[1], 64)
	if err != nil || rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be a number from 1 to 5")
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	r, err := client.CreateRating(context.Background(), api.QualityRatingCreate{
		AudioID:   args[0],
		Rating:    rating,
		Criterion: rateCriterion,
		Notes:     rateNotes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %.0f/5 (%s) on %s\n", styleSuccess.Render("Rated"), r.Rating, r.Criterion, shortID(r.AudioID))
	return nil
}

func runRateStats(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	audioID := ""
	if len(args) > 0 {
		audioID = args[0]
	}

	stats, err := client.GetRatingStats(context.Background(), audioID)
	if err != nil {
		return err
	}

	printField("Ratings", fmt.Sprintf("%d", stats.TotalRatings))
	printField("Average", floatOrDash(stats.AverageRating, "%.2f"))
	for criterion, avg := range stats.RatingByCriterion {
		printField(criterion, fmt.Sprintf("%.2f", avg))
	}
	return nil
}
