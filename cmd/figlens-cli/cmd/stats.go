package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"figlens/internal/application/commands"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file-key>",
	Short: "Summarize node statistics per view",
	Long: `Count nodes, text layers, vectors, instances, and image fills for
every top-level view of every page.

Examples:
  figlens-cli stats a1B2c3D4e5F6`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewStatsCommand(GetSource(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
