package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/api"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage prompt templates",
	Long:  `Manage reusable prompt blueprints, grouped by category.`,
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List templates",
	RunE:    runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show [template-id]",
	Short: "Show a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateCreateCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"add"},
	Short:   "Create a template",
	Args:    cobra.ExactArgs(1),
	RunE:    runTemplateCreate,
}

var templateCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List template categories",
	RunE:  runTemplateCategories,
}

var (
	templateListCategory string
	templateText         string
	templateDesc         string
	templateCategory     string
)

func init() {
	templateListCmd.Flags().StringVar(&templateListCategory, "category", "", "filter by category")
	templateCreateCmd.Flags().StringVar(&templateText, "text", "", "template prompt text (required)")
	templateCreateCmd.Flags().StringVar(&templateDesc, "description", "", "description")
	templateCreateCmd.Flags().StringVar(&templateCategory, "category", "", "category")
	_ = templateCreateCmd.MarkFlagRequired("text")

	templateCmd.AddCommand(templateCategoriesCmd)
	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	list, err := client.ListTemplates(context.Background(), templateListCategory, 1, 100)
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No templates.")
		return nil
	}

	for _, t := range list.Items {
		fmt.Printf("%s  %s", styleHint.Render(shortID(t.ID)), styleCommand.Render(t.Name))
		if t.Category != nil && *t.Category != "" {
			fmt.Printf("  %s", styleLabel.Render("["+*t.Category+"]"))
		}
		if t.IsSystem {
			fmt.Printf("  %s", styleHint.Render("system"))
		}
		fmt.Println()
	}
	return nil
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	t, err := client.GetTemplate(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(styleCommand.Render(t.Name))
	printField("ID", t.ID)
	printField("Category", orDash(t.Category))
	printField("Description", orDash(t.Description))
	fmt.Printf("\n%s\n", t.Text)
	return nil
}

func runTemplateCreate(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	t, err := client.CreateTemplate(context.Background(), api.TemplateCreate{
		Name:        args[0],
		Description: templateDesc,
		Text:        strings.TrimSpace(templateText),
		Category:    templateCategory,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s)\n", styleSuccess.Render("Created template"), t.Name, t.ID)
	return nil
}

func runTemplateCategories(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	categories, err := client.ListTemplateCategories(context.Background())
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		fmt.Println("No categories.")
		return nil
	}
	for _, c := range categories {
		fmt.Printf("  %s\n", c)
	}
	return nil
}
