package commands

import (
	"context"

	"figlens/internal/application"
	"figlens/internal/ports"
)

// UsageCommand fetches a file and counts component usage per page.
type UsageCommand struct {
	source  ports.FileSource
	FileKey string
}

// NewUsageCommand creates a new UsageCommand
func NewUsageCommand(source ports.FileSource, fileKey string) *UsageCommand {
	return &UsageCommand{source: source, FileKey: fileKey}
}

// Execute runs the usage analysis
func (c *UsageCommand) Execute(ctx context.Context) (*application.UsageReport, error) {
	if err := application.ValidateFileKey(c.FileKey); err != nil {
		return nil, err
	}
	doc, err := c.source.GetFile(ctx, c.FileKey)
	if err != nil {
		return nil, err
	}
	return application.BuildUsageReport(doc, c.FileKey)
}
