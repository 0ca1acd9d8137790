package commands

import (
	"context"

	"figlens/internal/application"
	"figlens/internal/ports"
)

// StatsCommand fetches a file and computes per-view statistics.
type StatsCommand struct {
	source  ports.FileSource
	FileKey string
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(source ports.FileSource, fileKey string) *StatsCommand {
	return &StatsCommand{source: source, FileKey: fileKey}
}

// Execute runs the statistics analysis
func (c *StatsCommand) Execute(ctx context.Context) (*application.StatsReport, error) {
	if err := application.ValidateFileKey(c.FileKey); err != nil {
		return nil, err
	}
	doc, err := c.source.GetFile(ctx, c.FileKey)
	if err != nil {
		return nil, err
	}
	return application.BuildStatsReport(doc, c.FileKey)
}
