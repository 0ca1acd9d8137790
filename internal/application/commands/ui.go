package commands

import (
	"context"

	"figlens/internal/application"
	"figlens/internal/domain"
	"figlens/internal/ports"
)

// UICommand fetches a file and classifies its UI-like elements.
type UICommand struct {
	source     ports.FileSource
	FileKey    string
	Thresholds domain.Thresholds
}

// NewUICommand creates a new UICommand with default thresholds
func NewUICommand(source ports.FileSource, fileKey string) *UICommand {
	return &UICommand{
		source:     source,
		FileKey:    fileKey,
		Thresholds: domain.DefaultThresholds(),
	}
}

// Execute runs the UI classification
func (c *UICommand) Execute(ctx context.Context) (*application.UIReport, error) {
	if err := application.ValidateFileKey(c.FileKey); err != nil {
		return nil, err
	}
	doc, err := c.source.GetFile(ctx, c.FileKey)
	if err != nil {
		return nil, err
	}
	return application.BuildUIReportWith(doc, c.FileKey, c.Thresholds)
}
