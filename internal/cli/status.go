package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pipeline overview",
	Long:  `Show the dashboard overview: generation, feedback, dataset, and training stage counts plus headline stats.`,
	RunE:  runStatus,
}

var statusFeedback bool

func init() {
	statusCmd.Flags().BoolVar(&statusFeedback, "feedback", false, "show the feedback distribution instead")
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if statusFeedback {
		metrics, err := client.GetFeedbackMetrics(ctx)
		if err != nil {
			return err
		}
		printField("Preferences", fmt.Sprintf("%d", metrics.PreferenceComparisons))
		printField("Tagged", fmt.Sprintf("%d samples", metrics.TaggedAudio))
		if len(metrics.ByAdapter) > 0 {
			fmt.Println(styleLabel.Render("\nBy adapter:"))
			for _, a := range metrics.ByAdapter {
				fmt.Printf("  %-24s %4d records  avg %s\n", a.AdapterName, a.Count, floatOrDash(a.AvgRating, "%.2f"))
			}
		}
		return nil
	}

	overview, err := client.GetOverviewMetrics(ctx)
	if err != nil {
		return err
	}

	p := overview.Pipeline
	fmt.Println(styleBrand.Render("Pipeline"))
	fmt.Printf("  %-12s %d total, %d completed, %d active\n", "generation", p.Generation.Total, p.Generation.Completed, p.Generation.Active)
	fmt.Printf("  %-12s %d total, %d rated samples\n", "feedback", p.Feedback.Total, p.Feedback.RatedSamples)
	fmt.Printf("  %-12s %d total, %d exported\n", "dataset", p.Dataset.Total, p.Dataset.Exported)
	fmt.Printf("  %-12s %d total, %d running\n", "training", p.Training.Total, p.Training.Running)

	q := overview.QuickStats
	fmt.Println(styleBrand.Render("\nQuick stats"))
	printField("Generations", fmt.Sprintf("%d", q.TotalGenerations))
	printField("Samples", fmt.Sprintf("%d", q.TotalSamples))
	printField("Avg rating", floatOrDash(q.AvgRating, "%.2f"))
	printField("Adapters", fmt.Sprintf("%d (%d active)", q.TotalAdapters, q.ActiveAdapters))
	printField("Unrated", fmt.Sprintf("%d samples", q.PendingFeedback))
	return nil
}
