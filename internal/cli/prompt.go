package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage text prompts",
	Long:  `Create, list, and search the stored text prompts.`,
}

var promptListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List prompts",
	RunE:    runPromptList,
}

var promptSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search prompts by text and attributes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPromptSearch,
}

var promptShowCmd = &cobra.Command{
	Use:   "show [prompt-id]",
	Short: "Show a prompt",
	Args:  cobra.ExactArgs(1),
	RunE:  runPromptShow,
}

var promptCreateCmd = &cobra.Command{
	Use:     "create [text]",
	Aliases: []string{"add"},
	Short:   "Create a prompt",
	Args:    cobra.ExactArgs(1),
	RunE:    runPromptCreate,
}

var (
	promptListPage     int
	promptListLimit    int
	promptSearchStyle  string
	promptSearchMood   string
	promptCreateStyle  string
	promptCreateMood   string
	promptCreateTempo  int
	promptCreateLength int
)

func init() {
	promptListCmd.Flags().IntVar(&promptListPage, "page", 1, "page number")
	promptListCmd.Flags().IntVar(&promptListLimit, "limit", 20, "results per page")
	promptSearchCmd.Flags().StringVar(&promptSearchStyle, "style", "", "filter by style")
	promptSearchCmd.Flags().StringVar(&promptSearchMood, "mood", "", "filter by mood")
	promptCreateCmd.Flags().StringVar(&promptCreateStyle, "style", "", "musical style")
	promptCreateCmd.Flags().StringVar(&promptCreateMood, "mood", "", "mood")
	promptCreateCmd.Flags().IntVar(&promptCreateTempo, "tempo", 0, "tempo in BPM (40-200)")
	promptCreateCmd.Flags().IntVar(&promptCreateLength, "duration", 0, "duration in seconds")

	promptCmd.AddCommand(promptCreateCmd)
	promptCmd.AddCommand(promptListCmd)
	promptCmd.AddCommand(promptSearchCmd)
	promptCmd.AddCommand(promptShowCmd)
}

func runPromptList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListPrompts(context.Background(), promptListPage, promptListLimit)
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No prompts. Run 'studio prompt create' to add one.")
		return nil
	}

	printPrompts(list.Items)
	fmt.Printf("\n%s\n", styleHint.Render(fmt.Sprintf("page %d, %d total", list.Page, list.Total)))
	return nil
}

func runPromptSearch(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	opts := api.PromptSearchOptions{
		Style: promptSearchStyle,
		Mood:  promptSearchMood,
		Limit: 20,
	}
	if len(args) > 0 {
		opts.Query = args[0]
	}

	result, err := client.SearchPrompts(context.Background(), opts)
	if err != nil {
		return err
	}

	if len(result.Items) == 0 {
		fmt.Println("No prompts match.")
		return nil
	}

	printPrompts(result.Items)
	fmt.Printf("\n%s\n", styleHint.Render(fmt.Sprintf("%d matching", result.Total)))
	return nil
}

func runPromptShow(cmd *cobra.Command, args []string) error {
	if err := validateID("prompt", args[0]); err != nil {
		return err
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	prompt, err := client.GetPrompt(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(styleCommand.Render(prompt.Text))
	printField("ID", prompt.ID)
	printField("Created", formatTime(prompt.CreatedAt))
	if a := prompt.Attributes; a != nil {
		if a.Style != "" {
			printField("Style", a.Style)
		}
		if a.Mood != "" {
			printField("Mood", a.Mood)
		}
		if a.Tempo != nil {
			printField("Tempo", fmt.Sprintf("%d bpm", *a.Tempo))
		}
		if a.Duration != nil {
			printField("Duration", fmt.Sprintf("%ds", *a.Duration))
		}
		if len(a.PrimaryInstruments) > 0 {
			printField("Instruments", strings.Join(a.PrimaryInstruments, ", "))
		}
	}
	printField("Samples", fmt.Sprintf("%d", len(prompt.AudioSampleIDs)))
	for _, id := range prompt.AudioSampleIDs {
		fmt.Printf("    %s\n", styleHint.Render(id))
	}
	return nil
}

func runPromptCreate(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	req := api.PromptCreate{Text: strings.TrimSpace(args[0])}
	if req.Text == "" {
		return fmt.Errorf("prompt text must not be empty")
	}
	attrs := &api.PromptAttributes{
		Style: promptCreateStyle,
		Mood:  promptCreateMood,
	}
	if promptCreateTempo > 0 {
		attrs.Tempo = &promptCreateTempo
	}
	if promptCreateLength > 0 {
		attrs.Duration = &promptCreateLength
	}
	if attrs.Style != "" || attrs.Mood != "" || attrs.Tempo != nil || attrs.Duration != nil {
		req.Attributes = attrs
	}

	prompt, err := client.CreatePrompt(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("Created prompt"), prompt.ID)
	return nil
}

func printPrompts(prompts []api.Prompt) {
	for _, p := range prompts {
		text := p.Text
		if len(text) > 72 {
			text = text[:69] + "..."
		}
		fmt.Printf("%s  %s", styleHint.Render(shortID(p.ID)), text)
		if a := p.Attributes; a != nil && (a.Style != "" || a.Mood != "") {
			parts := []string{}
			if a.Style != "" {
				parts = append(parts, a.Style)
			}
			if a.Mood != "" {
				parts = append(parts, a.Mood)
			}
			fmt.Printf("  %s", styleLabel.Render("["+strings.Join(parts, " · ")+"]"))
		}
		if n := len(p.AudioSampleIDs); n > 0 {
			fmt.Printf("  %s", styleHint.Render(fmt.Sprintf("%d samples", n)))
		}
		fmt.Println()
	}
}
