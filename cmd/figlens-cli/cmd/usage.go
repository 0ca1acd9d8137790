package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"figlens/internal/application/commands"
)

var usageCmd = &cobra.Command{
	Use:   "usage <file-key>",
	Short: "Count component instances in a file",
	Long: `Count how many times each component is instantiated, per page and
file-wide.

Examples:
  figlens-cli usage a1B2c3D4e5F6`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewUsageCommand(GetSource(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
