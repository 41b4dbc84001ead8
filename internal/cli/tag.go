package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Tag audio samples",
	Long:  `Label samples with positive or negative attributes (good_melody, noisy, ...).`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add [audio-id] [tag]...",
	Short: "Tag a sample",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTagAdd,
}

var tagListCmd = &cobra.Command{
	Use:     "list [audio-id]",
	Aliases: []string{"ls"},
	Short:   "List tags on a sample",
	Args:    cobra.ExactArgs(1),
	RunE:    runTagList,
}

var tagAvailableCmd = &cobra.Command{
	Use:   "available",
	Short: "Show the suggested tag vocabularies",
	RunE:  runTagAvailable,
}

var tagStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tag usage statistics",
	RunE:  runTagStats,
}

var tagNegative bool

func init() {
	tagAddCmd.Flags().BoolVar(&tagNegative, "negative", false, "mark the tags as negative attributes")

	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagAvailableCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagStatsCmd)
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	audioID, tags := args[0], args[1:]
	var positive, negative []string
	if tagNegative {
		negative = tags
	} else {
		positive = tags
	}

	created, err := client.BulkCreateTags(context.Background(), audioID, positive, negative)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d tags on %s\n", styleSuccess.Render("Added"), len(created), shortID(audioID))
	return nil
}

func runTagList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.GetTagsForAudio(context.Background(), args[0])
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No tags.")
		return nil
	}

	for _, t := range list.Items {
		sign := styleSuccess.Render("+")
		if !t.IsPositive {
			sign = styleError.Render("-")
		}
		fmt.Printf("  %s %s\n", sign, t.Tag)
	}
	return nil
}

func runTagAvailable(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	tags, err := client.GetAvailableTags(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("positive:"), strings.Join(tags.PositiveTags, ", "))
	fmt.Printf("%s %s\n", styleError.Render("negative:"), strings.Join(tags.NegativeTags, ", "))
	return nil
}

func runTagStats(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	stats, err := client.GetTagStats(context.Background())
	if err != nil {
		return err
	}

	printField("Tags", fmt.Sprintf("%d", stats.TotalTags))
	printField("Positive", fmt.Sprintf("%d", stats.PositiveCount))
	printField("Negative", fmt.Sprintf("%d", stats.NegativeCount))
	return nil
}
