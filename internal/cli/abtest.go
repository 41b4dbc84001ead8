package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var abtestCmd = &cobra.Command{
	Use:   "abtest",
	Short: "Run blind A/B tests between adapters",
	Long: `Run blind pairwise comparisons between two adapters (or an adapter
and the base model) over a shared set of prompts.`,
}

var abtestListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List A/B tests",
	RunE:    runABTestList,
}

var abtestCreateCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"add"},
	Short:   "Create an A/B test",
	Args:    cobra.ExactArgs(1),
	RunE:    runABTestCreate,
}

var abtestShowCmd = &cobra.Command{
	Use:   "show [test-id]",
	Short: "Show a test with its sample pairs",
	Args:  cobra.ExactArgs(1),
	RunE:  runABTestShow,
}

var abtestSamplesCmd = &cobra.Command{
	Use:   "samples [test-id]",
	Short: "Generate the sample pairs for a test",
	Args:  cobra.ExactArgs(1),
	RunE:  runABTestSamples,
}

var abtestVoteCmd = &cobra.Command{
	Use:   "vote [test-id] [pair-id] [a|b|equal]",
	Short: "Vote on a sample pair",
	Args:  cobra.ExactArgs(3),
	RunE:  runABTestVote,
}

var abtestResultsCmd = &cobra.Command{
	Use:   "results [test-id]",
	Short: "Show win rates and significance",
	Args:  cobra.ExactArgs(1),
	RunE:  runABTestResults,
}

var (
	abtestStatus     string
	abtestDesc       string
	abtestAdapterA   string
	abtestAdapterB   string
	abtestPromptIDs  []string
	abtestPerPrompt  int
	abtestSamplesIDs []string
)

func init() {
	abtestListCmd.Flags().StringVar(&abtestStatus, "status", "", "filter by status")
	abtestCreateCmd.Flags().StringVar(&abtestDesc, "description", "", "description")
	abtestCreateCmd.Flags().StringVar(&abtestAdapterA, "adapter-a", "", "adapter A (empty = base model)")
	abtestCreateCmd.Flags().StringVar(&abtestAdapterB, "adapter-b", "", "adapter B (empty = base model)")
	abtestCreateCmd.Flags().StringSliceVar(&abtestPromptIDs, "prompts", nil, "prompt IDs to compare on")
	abtestSamplesCmd.Flags().StringSliceVar(&abtestSamplesIDs, "prompts", nil, "restrict to these prompt IDs")
	abtestSamplesCmd.Flags().IntVar(&abtestPerPrompt, "per-prompt", 1, "samples per prompt")

	abtestCmd.AddCommand(abtestCreateCmd)
	abtestCmd.AddCommand(abtestListCmd)
	abtestCmd.AddCommand(abtestResultsCmd)
	abtestCmd.AddCommand(abtestSamplesCmd)
	abtestCmd.AddCommand(abtestShowCmd)
	abtestCmd.AddCommand(abtestVoteCmd)
}

func abtestName(name *string) string {
	if name == nil || *name == "" {
		return "base model"
	}
	return *name
}

func runABTestList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListABTests(context.Background(), abtestStatus, 50, 0)
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No A/B tests. Run 'studio abtest create' to start one.")
		return nil
	}

	for _, t := range list.Items {
		fmt.Printf("%s  %s  %s vs %s  %d/%d voted  %s\n",
			styleHint.Render(shortID(t.ID)), styleCommand.Render(t.Name),
			abtestName(t.AdapterAName), abtestName(t.AdapterBName),
			t.CompletedPairs, t.TotalPairs, styleLabel.Render(t.Status))
	}
	return nil
}

func runABTestCreate(cmd *cobra.Command, args []string) error {
	if len(abtestPromptIDs) == 0 {
		return fmt.Errorf("--prompts is required")
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	req := api.ABTestCreate{
		Name:        args[0],
		Description: abtestDesc,
		PromptIDs:   abtestPromptIDs,
	}
	if abtestAdapterA != "" {
		req.AdapterAID = &abtestAdapterA
	}
	if abtestAdapterB != "" {
		req.AdapterBID = &abtestAdapterB
	}

	test, err := client.CreateABTest(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s)\n", styleSuccess.Render("Created A/B test"), test.Name, test.ID)
	fmt.Println(styleHint.Render("Run 'studio abtest samples' to generate the pairs."))
	return nil
}

func runABTestShow(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	detail, err := client.GetABTest(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(styleCommand.Render(detail.Name))
	printField("A", abtestName(detail.AdapterAName))
	printField("B", abtestName(detail.AdapterBName))
	printField("Status", detail.Status)
	printField("Voted", fmt.Sprintf("%d/%d", detail.CompletedPairs, detail.TotalPairs))

	if len(detail.Pairs) > 0 {
		fmt.Println(styleLabel.Render("\nPairs:"))
		for _, p := range detail.Pairs {
			state := styleWarning.Render("pending")
			if p.Preference != nil {
				state = styleSuccess.Render("voted " + *p.Preference)
			} else if !p.IsReady {
				state = styleLabel.Render("generating")
			}
			fmt.Printf("  %s  prompt %s  %s\n", styleHint.Render(shortID(p.ID)), shortID(p.PromptID), state)
		}
	}
	return nil
}

func runABTestSamples(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	test, err := client.GenerateABTestSamples(context.Background(), args[0], abtestSamplesIDs, abtestPerPrompt)
	if err != nil {
		return err
	}

	fmt.Printf("%s for %d pairs\n", styleSuccess.Render("Generation queued"), test.TotalPairs)
	return nil
}

func runABTestVote(cmd *cobra.Command, args []string) error {
	pref := args[2]
	if pref != "a" && pref != "b" && pref != "equal" {
		return fmt.Errorf("preference must be a, b, or equal")
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	pair, err := client.VoteABTest(context.Background(), args[0], args[1], pref)
	if err != nil {
		return err
	}

	fmt.Printf("%s on pair %s\n", styleSuccess.Render("Vote recorded"), shortID(pair.ID))
	return nil
}

func runABTestResults(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	results, err := client.GetABTestResults(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(styleCommand.Render(results.Name))
	printField("Votes", fmt.Sprintf("%d", results.TotalVotes))
	printField(abtestName(results.AdapterAName), fmt.Sprintf("%d wins (%.0f%%)", results.APreferred, results.AWinRate*100))
	printField(abtestName(results.AdapterBName), fmt.Sprintf("%d wins (%.0f%%)", results.BPreferred, results.BWinRate*100))
	printField("Equal", fmt.Sprintf("%d", results.Equal))
	if results.StatisticalSignificance != nil {
		printField("p-value", fmt.Sprintf("%.3f", *results.StatisticalSignificance))
	} else {
		fmt.Println(styleHint.Render("  Not enough votes for significance."))
	}
	return nil
}
