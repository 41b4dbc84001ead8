package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var adapterCmd = &cobra.Command{
	Use:   "adapter",
	Short: "Manage fine-tuned adapters",
	Long:  `Manage the registry of LoRA adapters and their versions.`,
}

var adapterListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List adapters",
	RunE:    runAdapterList,
}

var adapterShowCmd = &cobra.Command{
	Use:   "show [adapter-id]",
	Short: "Show an adapter with its versions",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdapterShow,
}

var adapterCreateCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"add"},
	Short:   "Register an adapter",
	Args:    cobra.ExactArgs(1),
	RunE:    runAdapterCreate,
}

var adapterActivateCmd = &cobra.Command{
	Use:   "activate [adapter-id] [version-id]",
	Short: "Activate an adapter version (latest when omitted)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runAdapterActivate,
}

var adapterTimelineCmd = &cobra.Command{
	Use:   "timeline [adapter-id]",
	Short: "Show an adapter's history",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdapterTimeline,
}

var adapterDeleteCmd = &cobra.Command{
	Use:     "delete [adapter-id]",
	Aliases: []string{"rm"},
	Short:   "Delete an adapter",
	Args:    cobra.ExactArgs(1),
	RunE:    runAdapterDelete,
}

var (
	adapterListActive bool
	adapterCreateDesc string
	adapterCreateBase string
	adapterCreatePath string
)

func init() {
	adapterListCmd.Flags().BoolVar(&adapterListActive, "active", false, "only active adapters")
	adapterCreateCmd.Flags().StringVar(&adapterCreateDesc, "description", "", "description")
	adapterCreateCmd.Flags().StringVar(&adapterCreateBase, "base-model", "", "base model ID")
	adapterCreateCmd.Flags().StringVar(&adapterCreatePath, "path", "", "storage path of the adapter weights")

	adapterCmd.AddCommand(adapterActivateCmd)
	adapterCmd.AddCommand(adapterCreateCmd)
	adapterCmd.AddCommand(adapterDeleteCmd)
	adapterCmd.AddCommand(adapterListCmd)
	adapterCmd.AddCommand(adapterShowCmd)
	adapterCmd.AddCommand(adapterTimelineCmd)
}

func runAdapterList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListAdapters(context.Background(), api.AdapterListOptions{
		ActiveOnly: adapterListActive,
		Limit:      100,
	})
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No adapters. Run 'studio adapter create' to register one.")
		return nil
	}

	for _, a := range list.Items {
		mark := " "
		if a.IsActive {
			mark = styleSuccess.Render("●")
		}
		fmt.Printf("%s %s  %s", mark, styleHint.Render(shortID(a.ID)), styleCommand.Render(a.Name))
		if a.CurrentVersion != nil {
			fmt.Printf("  v%s", *a.CurrentVersion)
		}
		fmt.Printf("  %s\n", styleLabel.Render(a.BaseModel))
	}
	return nil
}

func runAdapterShow(cmd *cobra.Command, args []string) error {
	if err := validateID("adapter", args[0]); err != nil {
		return err
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	detail, err := client.GetAdapter(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(styleCommand.Render(detail.Name))
	printField("ID", detail.ID)
	printField("Base model", detail.BaseModel)
	printField("Status", detail.Status)
	printField("Active", fmt.Sprintf("%t", detail.IsActive))
	printField("Description", orDash(detail.Description))
	printField("Created", formatTime(detail.CreatedAt))

	if len(detail.Versions) > 0 {
		fmt.Println(styleLabel.Render("\nVersions:"))
		for _, v := range detail.Versions {
			mark := " "
			if v.IsActive {
				mark = styleSuccess.Render("●")
			}
			fmt.Printf("  %s v%s  %s  %s\n", mark, v.Version, styleHint.Render(shortID(v.ID)), formatTime(v.CreatedAt))
		}
	}
	return nil
}

func runAdapterCreate(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	adapter, err := client.CreateAdapter(context.Background(), api.AdapterCreate{
		Name:        args[0],
		Description: adapterCreateDesc,
		BaseModel:   adapterCreateBase,
		StoragePath: adapterCreatePath,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s)\n", styleSuccess.Render("Registered adapter"), adapter.Name, adapter.ID)
	return nil
}

func runAdapterActivate(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()
	adapterID := args[0]

	versionID := ""
	if len(args) == 2 {
		versionID = args[1]
	} else {
		detail, err := client.GetAdapter(ctx, adapterID)
		if err != nil {
			return err
		}
		if len(detail.Versions) == 0 {
			return fmt.Errorf("adapter has no versions to activate")
		}
		versionID = detail.Versions[len(detail.Versions)-1].ID
	}

	if err := client.ActivateAdapterVersion(ctx, adapterID, versionID); err != nil {
		return err
	}

	fmt.Printf("%s version %s on %s\n", styleSuccess.Render("Activated"), shortID(versionID), shortID(adapterID))
	return nil
}

func runAdapterTimeline(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	timeline, err := client.GetAdapterTimeline(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(styleCommand.Render(timeline.AdapterName))
	for _, ev := range timeline.Events {
		fmt.Printf("  %s  %s  %s\n", styleHint.Render(formatTime(ev.Timestamp)), styleLabel.Render(ev.Type), ev.Title)
	}
	fmt.Printf("\n%s\n", styleHint.Render(fmt.Sprintf("%d versions, %d training runs", timeline.TotalVersions, timeline.TotalTrainingRuns)))
	return nil
}

func runAdapterDelete(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.DeleteAdapter(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("Deleted adapter"), args[0])
	return nil
}
