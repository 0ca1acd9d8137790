package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"figlens/internal/application/commands"
)

var (
	imageFormat string
	imageScale  float64
)

var imagesCmd = &cobra.Command{
	Use:   "images <file-key> <node-id>...",
	Short: "Export render URLs for nodes",
	Long: `Request rendered images for the given nodes and print the resulting
URLs. Formats: png, jpg, svg, pdf.

Examples:
  figlens-cli images a1B2c3D4e5F6 1:2 1:5
  figlens-cli images a1B2c3D4e5F6 1:2 --format svg
  figlens-cli images a1B2c3D4e5F6 1:2 --scale 2`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exportCmd := commands.NewExportImagesCommand(GetSource(), args[0], args[1:])
		if imageFormat != "" {
			exportCmd.Format = imageFormat
		}
		if imageScale > 0 {
			exportCmd.Scale = imageScale
		}
		export, err := exportCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		return printJSON(export)
	},
}

func init() {
	rootCmd.AddCommand(imagesCmd)
	imagesCmd.Flags().StringVar(&imageFormat, "format", "", "image format: png, jpg, svg, or pdf")
	imagesCmd.Flags().Float64Var(&imageScale, "scale", 0, "render scale between 0.01 and 4")
}
