package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt-id]",
	Short: "Generate audio samples",
	Long: `Submit a generation job for an existing prompt, or create a new
prompt inline with --text. With --wait the command polls until the job
reaches a terminal state.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var generateJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List generation jobs",
	RunE:  runGenerateJobs,
}

var (
	generateText    string
	generateSamples int
	generateAdapter string
	generateSeed    int
	generateTemp    float64
	generateTopK    int
	generateTopP    float64
	generateLength  int
	generateWait    bool
	jobsStatus      string
	jobsLimit       int
)

func init() {
	generateCmd.Flags().StringVar(&generateText, "text", "", "create a prompt with this text and generate from it")
	generateCmd.Flags().IntVar(&generateSamples, "samples", 0, "number of samples (default from settings)")
	generateCmd.Flags().StringVar(&generateAdapter, "adapter", "", "adapter ID to generate with")
	generateCmd.Flags().IntVar(&generateSeed, "seed", 0, "random seed")
	generateCmd.Flags().Float64Var(&generateTemp, "temperature", 0, "sampling temperature")
	generateCmd.Flags().IntVar(&generateTopK, "top-k", 0, "top-k sampling")
	generateCmd.Flags().Float64Var(&generateTopP, "top-p", 0, "top-p sampling")
	generateCmd.Flags().IntVar(&generateLength, "duration", 0, "duration in seconds")
	generateCmd.Flags().BoolVar(&generateWait, "wait", false, "wait for the job to finish")
	generateJobsCmd.Flags().StringVar(&jobsStatus, "status", "", "filter by status")
	generateJobsCmd.Flags().IntVar(&jobsLimit, "limit", 20, "results")

	generateCmd.AddCommand(generateJobsCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	client, settings, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	promptID := ""
	switch {
	case len(args) == 1 && generateText != "":
		return fmt.Errorf("pass a prompt ID or --text, not both")
	case len(args) == 1:
		promptID = args[0]
	case generateText != "":
		prompt, err := client.CreatePrompt(ctx, api.PromptCreate{Text: strings.TrimSpace(generateText)})
		if err != nil {
			return fmt.Errorf("failed to create prompt: %w", err)
		}
		fmt.Printf("%s %s\n", styleSuccess.Render("Created prompt"), prompt.ID)
		promptID = prompt.ID
	default:
		return fmt.Errorf("pass a prompt ID or --text")
	}

	req := api.GenerationRequest{PromptID: promptID}
	req.NumSamples = settings.Generation.NumSamples
	if generateSamples > 0 {
		req.NumSamples = generateSamples
	}
	if generateAdapter != "" {
		req.AdapterID = &generateAdapter
	}
	if generateSeed > 0 {
		req.Seed = &generateSeed
	}
	if generateTemp > 0 {
		req.Temperature = &generateTemp
	} else if settings.Generation.Temperature > 0 {
		req.Temperature = &settings.Generation.Temperature
	}
	if generateTopK > 0 {
		req.TopK = &generateTopK
	} else if settings.Generation.TopK > 0 {
		req.TopK = &settings.Generation.TopK
	}
	if generateTopP > 0 {
		req.TopP = &generateTopP
	}
	if generateLength > 0 {
		req.Duration = &generateLength
	} else if settings.Generation.Duration > 0 {
		req.Duration = &settings.Generation.Duration
	}

	job, err := client.Generate(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (%s)\n", styleSuccess.Render("Job submitted:"), job.ID, styleJobStatus(job.Status))

	if !generateWait {
		fmt.Println(styleHint.Render("Run 'studio generate jobs' to check progress."))
		return nil
	}

	lastProgress := -1
	job, err = client.WaitForJob(ctx, job.ID, func(j *api.GenerationJob) {
		if j.Progress == nil {
			return
		}
		pct := int(*j.Progress * 100)
		if pct != lastProgress {
			fmt.Printf("\r  %s %d%%  ", styleLabel.Render("generating"), pct)
			lastProgress = pct
		}
	})
	fmt.Println()
	if err != nil {
		return err
	}

	switch job.Status {
	case api.JobCompleted:
		fmt.Printf("%s %d samples\n", styleSuccess.Render("Done:"), len(job.AudioIDs))
		for _, id := range job.AudioIDs {
			fmt.Printf("  %s\n", id)
		}
	case api.JobFailed:
		msg := "unknown error"
		if job.Error != nil {
			msg = *job.Error
		}
		return fmt.Errorf("generation failed: %s", msg)
	default:
		fmt.Printf("Job ended %s\n", styleJobStatus(job.Status))
	}
	return nil
}

func runGenerateJobs(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListJobs(context.Background(), api.JobListOptions{
		Status: jobsStatus,
		Limit:  jobsLimit,
	})
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No generation jobs.")
		return nil
	}

	for _, j := range list.Items {
		preview := "-"
		if j.PromptPreview != nil {
			preview = *j.PromptPreview
			if len(preview) > 48 {
				preview = preview[:45] + "..."
			}
		}
		fmt.Printf("%s  %-10s  %s", styleHint.Render(shortID(j.ID)), styleJobStatus(j.Status), preview)
		if j.AdapterName != nil {
			fmt.Printf("  %s", styleLabel.Render("["+*j.AdapterName+"]"))
		}
		fmt.Println()
	}
	fmt.Printf("\n%s\n", styleHint.Render(fmt.Sprintf("%d total", list.Total)))
	return nil
}
