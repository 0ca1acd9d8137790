package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"figlens/internal/application"
	"figlens/internal/application/commands"
)

var uiKind string

var uiCmd = &cobra.Command{
	Use:   "ui <file-key>",
	Short: "Find UI elements in a file",
	Long: `Classify nodes in a file as buttons, inputs, or cards and list them
with their path, view role, and dimensions.

Examples:
  figlens-cli ui a1B2c3D4e5F6
  figlens-cli ui a1B2c3D4e5F6 --kind button`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewUICommand(GetSource(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		if uiKind != "" {
			filterUIReport(report, uiKind)
		}
		return printJSON(report)
	},
}

func filterUIReport(report *application.UIReport, kind string) {
	for i := range report.Pages {
		groups := &report.Pages[i].UI
		if kind != "button" {
			groups.Buttons = []application.UIElement{}
		}
		if kind != "input" {
			groups.Inputs = []application.UIElement{}
		}
		if kind != "card" {
			groups.Cards = []application.UIElement{}
		}
	}
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&uiKind, "kind", "", "only report one kind: button, input, or card")
}
