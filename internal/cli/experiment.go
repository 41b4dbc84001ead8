package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var experimentCmd = &cobra.Command{
	Use:     "experiment",
	Aliases: []string{"exp"},
	Short:   "Manage training experiments",
	Long:    `Manage experiments and the training runs grouped under them.`,
}

var experimentListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List experiments",
	RunE:    runExperimentList,
}

var experimentShowCmd = &cobra.Command{
	Use:   "show [experiment-id]",
	Short: "Show an experiment with its runs",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperimentShow,
}

var experimentCreateCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"add"},
	Short:   "Create an experiment",
	Args:    cobra.ExactArgs(1),
	RunE:    runExperimentCreate,
}

var experimentRunsCmd = &cobra.Command{
	Use:   "runs [experiment-id]",
	Short: "List the runs of an experiment",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperimentRuns,
}

var experimentMetricsCmd = &cobra.Command{
	Use:   "metrics [experiment-id]",
	Short: "Show aggregated run metrics",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperimentMetrics,
}

var experimentArchiveCmd = &cobra.Command{
	Use:   "archive [experiment-id]",
	Short: "Archive an experiment",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperimentArchive,
}

var experimentUnarchiveCmd = &cobra.Command{
	Use:   "unarchive [experiment-id]",
	Short: "Restore an archived experiment",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperimentUnarchive,
}

var (
	experimentListStatus   string
	experimentListArchived bool
	experimentCreateDesc   string
	experimentCreateDS     string
)

func init() {
	experimentListCmd.Flags().StringVar(&experimentListStatus, "status", "", "filter by status")
	experimentListCmd.Flags().BoolVar(&experimentListArchived, "archived", false, "include archived experiments")
	experimentCreateCmd.Flags().StringVar(&experimentCreateDesc, "description", "", "description")
	experimentCreateCmd.Flags().StringVar(&experimentCreateDS, "dataset", "", "dataset ID to train on")

	experimentCmd.AddCommand(experimentArchiveCmd)
	experimentCmd.AddCommand(experimentCreateCmd)
	experimentCmd.AddCommand(experimentListCmd)
	experimentCmd.AddCommand(experimentMetricsCmd)
	experimentCmd.AddCommand(experimentRunsCmd)
	experimentCmd.AddCommand(experimentShowCmd)
	experimentCmd.AddCommand(experimentUnarchiveCmd)
}

func runExperimentList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListExperiments(context.Background(), api.ExperimentListOptions{
		Status:          experimentListStatus,
		IncludeArchived: experimentListArchived,
		Limit:           50,
	})
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No experiments. Run 'studio experiment create' to start one.")
		return nil
	}

	for _, e := range list.Items {
		fmt.Printf("%s  %s  %s  %d runs", styleHint.Render(shortID(e.ID)), styleCommand.Render(e.Name), styleExperimentStatus(e.Status), e.RunCount)
		if e.BestLoss != nil {
			fmt.Printf("  %s", styleLabel.Render(fmt.Sprintf("best %.4f", *e.BestLoss)))
		}
		fmt.Println()
	}
	return nil
}

func runExperimentShow(cmd *cobra.Command, args []string) error {
	if err := validateID("experiment", args[0]); err != nil {
		return err
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	detail, err := client.GetExperiment(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(styleCommand.Render(detail.Name))
	printField("ID", detail.ID)
	printField("Status", string(detail.Status))
	printField("Description", orDash(detail.Description))
	printField("Dataset", orDash(detail.DatasetID))
	printField("Best loss", floatOrDash(detail.BestLoss, "%.4f"))
	printField("Created", formatTime(detail.CreatedAt))

	if len(detail.Runs) > 0 {
		fmt.Println(styleLabel.Render("\nRuns:"))
		printRuns(detail.Runs)
	}
	return nil
}

func runExperimentCreate(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	req := api.ExperimentCreate{
		Name:        args[0],
		Description: experimentCreateDesc,
	}
	if experimentCreateDS != "" {
		req.DatasetID = &experimentCreateDS
	}

	exp, err := client.CreateExperiment(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s)\n", styleSuccess.Render("Created experiment"), exp.Name, exp.ID)
	return nil
}

func runExperimentRuns(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	runs, err := client.ListRuns(context.Background(), args[0])
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs yet.")
		return nil
	}

	printRuns(runs)
	return nil
}

func runExperimentMetrics(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	metrics, err := client.GetExperimentMetrics(context.Background(), args[0])
	if err != nil {
		return err
	}

	printField("Runs", fmt.Sprintf("%d", metrics.RunCount))
	printField("Best loss", floatOrDash(metrics.BestLoss, "%.4f"))
	for _, r := range metrics.Runs {
		name := shortID(r.ID)
		if r.Name != nil && *r.Name != "" {
			name = *r.Name
		}
		mark := "  "
		if metrics.BestRunID != nil && r.ID == *metrics.BestRunID {
			mark = styleSuccess.Render("★ ")
		}
		fmt.Printf("  %s%-20s loss %s\n", mark, name, floatOrDash(r.FinalLoss, "%.4f"))
	}
	return nil
}

func runExperimentArchive(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	exp, err := client.ArchiveExperiment(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("Archived"), exp.Name)
	return nil
}

func runExperimentUnarchive(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	exp, err := client.UnarchiveExperiment(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("Restored"), exp.Name)
	return nil
}

func printRuns(runs []api.ExperimentRun) {
	for _, r := range runs {
		name := shortID(r.ID)
		if r.Name != nil && *r.Name != "" {
			name = *r.Name
		}
		fmt.Printf("  %-20s %-10s loss %s\n", name, styleRunStatus(r.Status), floatOrDash(r.FinalLoss, "%.4f"))
	}
}
