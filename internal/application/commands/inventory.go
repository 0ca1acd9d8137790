package commands

import (
	"context"

	"figlens/internal/application"
	"figlens/internal/ports"
)

// InventoryCommand fetches a file and inventories its reusable assets.
type InventoryCommand struct {
	source  ports.FileSource
	FileKey string
}

// NewInventoryCommand creates a new InventoryCommand
func NewInventoryCommand(source ports.FileSource, fileKey string) *InventoryCommand {
	return &InventoryCommand{source: source, FileKey: fileKey}
}

// Execute runs the inventory analysis
func (c *InventoryCommand) Execute(ctx context.Context) (*application.InventoryReport, error) {
	if err := application.ValidateFileKey(c.FileKey); err != nil {
		return nil, err
	}
	doc, err := c.source.GetFile(ctx, c.FileKey)
	if err != nil {
		return nil, err
	}
	return application.BuildInventoryReport(doc, c.FileKey)
}
