package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Build and export training datasets",
	Long:  `Build datasets from filtered feedback and export them for training.`,
}

var datasetListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List datasets",
	RunE:    runDatasetList,
}

var datasetCreateCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"add"},
	Short:   "Build a dataset from filtered feedback",
	Args:    cobra.ExactArgs(1),
	RunE:    runDatasetCreate,
}

var datasetPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Count the samples a filter would select",
	RunE:  runDatasetPreview,
}

var datasetExportCmd = &cobra.Command{
	Use:   "export [dataset-id]",
	Short: "Export a dataset to disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetExport,
}

var datasetStatsCmd = &cobra.Command{
	Use:   "stats [dataset-id]",
	Short: "Show dataset quality statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetStats,
}

var datasetDeleteCmd = &cobra.Command{
	Use:     "delete [dataset-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a dataset",
	Args:    cobra.ExactArgs(1),
	RunE:    runDatasetDelete,
}

var (
	datasetType      string
	datasetMinRating float64
	datasetTags      string
	datasetDesc      string
	datasetFormat    string
)

func init() {
	for _, c := range []*cobra.Command{datasetCreateCmd, datasetPreviewCmd} {
		c.Flags().StringVar(&datasetType, "type", "supervised", "dataset type: supervised or preference")
		c.Flags().Float64Var(&datasetMinRating, "min-rating", 0, "minimum rating filter")
		c.Flags().StringVar(&datasetTags, "tags", "", "comma-separated required tags")
	}
	datasetCreateCmd.Flags().StringVar(&datasetDesc, "description", "", "description")
	datasetExportCmd.Flags().StringVar(&datasetFormat, "format", "jsonl", "export format")

	datasetCmd.AddCommand(datasetCreateCmd)
	datasetCmd.AddCommand(datasetDeleteCmd)
	datasetCmd.AddCommand(datasetExportCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetPreviewCmd)
	datasetCmd.AddCommand(datasetStatsCmd)
}

func datasetFilterFromFlags() (api.DatasetType, *api.DatasetFilter, error) {
	typ := api.DatasetType(datasetType)
	if typ != api.DatasetSupervised && typ != api.DatasetPreference {
		return "", nil, fmt.Errorf("type must be supervised or preference")
	}

	filter := &api.DatasetFilter{RequiredTags: splitTags(datasetTags)}
	if datasetMinRating > 0 {
		filter.MinRating = &datasetMinRating
	}
	if filter.MinRating == nil && len(filter.RequiredTags) == 0 {
		filter = nil
	}
	return typ, filter, nil
}

func runDatasetList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListDatasets(context.Background(), 1, 100)
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No datasets. Run 'studio dataset create' to build one.")
		return nil
	}

	for _, d := range list.Items {
		badge := styleLabel.Render("[S]")
		if d.Type == api.DatasetPreference {
			badge = styleLabel.Render("[P]")
		}
		fmt.Printf("%s %s  %s  %d samples", badge, styleHint.Render(shortID(d.ID)), styleCommand.Render(d.Name), d.SampleCount)
		if d.ExportPath != nil {
			fmt.Printf("  %s", styleSuccess.Render("exported"))
		}
		fmt.Println()
	}
	return nil
}

func runDatasetCreate(cmd *cobra.Command, args []string) error {
	typ, filter, err := datasetFilterFromFlags()
	if err != nil {
		return err
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	dataset, err := client.CreateDataset(context.Background(), api.DatasetCreate{
		Name:        args[0],
		Description: datasetDesc,
		Type:        typ,
		FilterQuery: filter,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s with %d samples\n", styleSuccess.Render("Built dataset"), dataset.Name, dataset.SampleCount)
	return nil
}

func runDatasetPreview(cmd *cobra.Command, args []string) error {
	typ, filter, err := datasetFilterFromFlags()
	if err != nil {
		return err
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	count, err := client.PreviewDataset(context.Background(), typ, filter)
	if err != nil {
		return err
	}

	fmt.Printf("Filter selects %s samples.\n", styleCommand.Render(fmt.Sprintf("%d", count)))
	return nil
}

func runDatasetExport(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	export, err := client.ExportDataset(context.Background(), args[0], datasetFormat)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d samples to %s\n", styleSuccess.Render("Exported"), export.SampleCount, export.ExportPath)
	return nil
}

func runDatasetStats(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	stats, err := client.GetDatasetStats(context.Background(), args[0])
	if err != nil {
		return err
	}

	printField("Samples", fmt.Sprintf("%d", stats.SampleCount))
	printField("Prompts", fmt.Sprintf("%d", stats.UniquePrompts))
	printField("Adapters", fmt.Sprintf("%d", stats.UniqueAdapters))
	printField("Agreement", floatOrDash(stats.InterRaterAgreement, "%.2f"))
	printField("Consistency", floatOrDash(stats.PreferenceConsistency, "%.2f"))

	if len(stats.RatingDistribution) > 0 {
		fmt.Println(styleLabel.Render("\nRating distribution:"))
		keys := make([]string, 0, len(stats.RatingDistribution))
		for k := range stats.RatingDistribution {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s: %d\n", k, stats.RatingDistribution[k])
		}
	}
	return nil
}

func runDatasetDelete(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.DeleteDataset(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("Deleted dataset"), args[0])
	return nil
}
