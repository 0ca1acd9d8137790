package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"figlens/internal/application/commands"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory <file-key>",
	Short: "List components, component sets, and styles",
	Long: `List the components, component sets, and published styles defined in
a file, with instance counts.

Examples:
  figlens-cli inventory a1B2c3D4e5F6`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewInventoryCommand(GetSource(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
}
