package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Manage the base model",
}

var modelListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available base models",
	RunE:    runModelList,
}

var modelCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active base model",
	RunE:  runModelCurrent,
}

var modelSwitchCmd = &cobra.Command{
	Use:   "switch [model-id]",
	Short: "Switch the active base model",
	Args:  cobra.ExactArgs(1),
	RunE:  runModelSwitch,
}

func init() {
	modelCmd.AddCommand(modelCurrentCmd)
	modelCmd.AddCommand(modelListCmd)
	modelCmd.AddCommand(modelSwitchCmd)
}

func runModelList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListModels(context.Background())
	if err != nil {
		return err
	}

	for _, m := range list.Models {
		mark := " "
		if m.ID == list.CurrentModel {
			mark = styleSuccess.Render("●")
		}
		fmt.Printf("%s %s  %s  %s\n", mark, styleCommand.Render(m.ID), m.DisplayName,
			styleLabel.Render(fmt.Sprintf("%.0f GB VRAM, max %ds", m.VRAMRequirementGB, m.MaxDurationSeconds)))
	}
	return nil
}

func runModelCurrent(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	m, err := client.GetCurrentModel(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(styleCommand.Render(m.DisplayName))
	printField("ID", m.ID)
	printField("HF model", m.HFModelID)
	printField("Sample rate", fmt.Sprintf("%d Hz", m.SampleRate))
	printField("Max duration", fmt.Sprintf("%ds", m.MaxDurationSeconds))
	printField("VRAM", fmt.Sprintf("%.0f GB", m.VRAMRequirementGB))
	return nil
}

func runModelSwitch(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	fmt.Println("Switching model (this loads weights and can take a while)...")
	result, err := client.SwitchModel(context.Background(), args[0])
	if err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("model switch failed: %s", result.Message)
	}
	fmt.Printf("%s %s → %s\n", styleSuccess.Render("Switched:"), result.PreviousModel, result.CurrentModel)
	return nil
}
