package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var favoriteCmd = &cobra.Command{
	Use:     "favorite",
	Aliases: []string{"fav"},
	Short:   "Bookmark prompts and audio samples",
}

var favoriteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List favorites",
	RunE:    runFavoriteList,
}

var favoriteToggleCmd = &cobra.Command{
	Use:   "toggle [prompt|audio] [target-id]",
	Short: "Add or remove a favorite",
	Args:  cobra.ExactArgs(2),
	RunE:  runFavoriteToggle,
}

var (
	favoriteListType string
	favoriteNote     string
)

func init() {
	favoriteListCmd.Flags().StringVar(&favoriteListType, "type", "", "filter by target type: prompt or audio")
	favoriteToggleCmd.Flags().StringVar(&favoriteNote, "note", "", "note to attach when adding")

	favoriteCmd.AddCommand(favoriteListCmd)
	favoriteCmd.AddCommand(favoriteToggleCmd)
}

func runFavoriteList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListFavorites(context.Background(), api.FavoriteListOptions{
		TargetType: api.TargetType(favoriteListType),
		Limit:      100,
	})
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No favorites.")
		return nil
	}

	for _, f := range list.Items {
		preview := "-"
		if f.TargetPreview != nil {
			preview = *f.TargetPreview
			if len(preview) > 60 {
				preview = preview[:57] + "..."
			}
		}
		fmt.Printf("%s %s  %s  %s", styleWarning.Render("♥"), styleLabel.Render(string(f.TargetType)), styleHint.Render(shortID(f.TargetID)), preview)
		if f.Note != nil && *f.Note != "" {
			fmt.Printf("  %s", styleHint.Render("("+*f.Note+")"))
		}
		fmt.Println()
	}
	return nil
}

func runFavoriteToggle(cmd *cobra.Command, args []string) error {
	targetType := api.TargetType(args[0])
	if targetType != api.TargetPrompt && targetType != api.TargetAudio {
		return fmt.Errorf("target type must be prompt or audio")
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	fav, err := client.ToggleFavorite(context.Background(), targetType, args[1], favoriteNote)
	if err != nil {
		return err
	}

	if fav == nil {
		fmt.Printf("%s %s\n", styleSuccess.Render("Removed favorite"), shortID(args[1]))
	} else {
		fmt.Printf("%s %s\n", styleSuccess.Render("Favorited"), shortID(fav.TargetID))
	}
	return nil
}
