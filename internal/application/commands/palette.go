package commands

import (
	"context"

	"figlens/internal/application"
	"figlens/internal/ports"
)

// PaletteCommand fetches a file and builds its color palette report.
type PaletteCommand struct {
	source  ports.FileSource
	FileKey string
}

// NewPaletteCommand creates a new PaletteCommand
func NewPaletteCommand(source ports.FileSource, fileKey string) *PaletteCommand {
	return &PaletteCommand{source: source, FileKey: fileKey}
}

// Execute runs the palette analysis
func (c *PaletteCommand) Execute(ctx context.Context) (*application.PaletteReport, error) {
	if err := application.ValidateFileKey(c.FileKey); err != nil {
		return nil, err
	}
	doc, err := c.source.GetFile(ctx, c.FileKey)
	if err != nil {
		return nil, err
	}
	return application.BuildPaletteReport(doc, c.FileKey)
}
