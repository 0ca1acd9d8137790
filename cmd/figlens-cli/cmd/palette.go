package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"figlens/internal/application/commands"
)

var paletteCmd = &cobra.Command{
	Use:   "palette <file-key>",
	Short: "Extract the color palette of a file",
	Long: `Extract the solid fill colors used in a file, ranked by frequency.

The report contains the file-wide palette plus a palette per page and
per top-level view, along with any published fill styles.

Examples:
  figlens-cli palette a1B2c3D4e5F6
  figlens-cli palette a1B2c3D4e5F6 --no-cache`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewPaletteCommand(GetSource(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
