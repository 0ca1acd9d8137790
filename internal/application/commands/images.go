package commands

import (
	"context"

	"figlens/internal/application"
	"figlens/internal/ports"
)

// ImageExport maps node IDs to rendered image URLs.
type ImageExport struct {
	FileKey string            `json:"fileKey"`
	Format  string            `json:"format"`
	Scale   float64           `json:"scale"`
	Images  map[string]string `json:"images"`
}

// ExportImagesCommand resolves export URLs for a set of nodes. The URLs are
// returned as-is; nothing is downloaded.
type ExportImagesCommand struct {
	source  ports.FileSource
	FileKey string
	NodeIDs []string
	Format  string
	Scale   float64
}

// NewExportImagesCommand creates a new ExportImagesCommand
func NewExportImagesCommand(source ports.FileSource, fileKey string, nodeIDs []string) *ExportImagesCommand {
	return &ExportImagesCommand{
		source:  source,
		FileKey: fileKey,
		NodeIDs: nodeIDs,
		Format:  "png",
		Scale:   1,
	}
}

// Execute resolves the export URLs
func (c *ExportImagesCommand) Execute(ctx context.Context) (*ImageExport, error) {
	if err := application.ValidateFileKey(c.FileKey); err != nil {
		return nil, err
	}
	images, err := c.source.GetImages(ctx, c.FileKey, c.NodeIDs, c.Format, c.Scale)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = map[string]string{}
	}
	return &ImageExport{
		FileKey: c.FileKey,
		Format:  c.Format,
		Scale:   c.Scale,
		Images:  images,
	}, nil
}
