package ports

import (
	"context"

	"figlens/internal/domain"
)

// FileSource retrieves design documents from the upstream design-file
// service. Implementations own all network concerns (auth, retries,
// timeouts); the analysis core never sees them.
type FileSource interface {
	// GetFile fetches the full document for a file key.
	GetFile(ctx context.Context, fileKey string) (*domain.Document, error)

	// GetNodes fetches specific nodes by ID. Unknown IDs are absent from
	// the result, not an error.
	GetNodes(ctx context.Context, fileKey string, ids []string) (map[string]*domain.Node, error)

	// GetImages resolves export URLs for the given node IDs. format is
	// png/jpg/svg/pdf; scale applies to raster formats.
	GetImages(ctx context.Context, fileKey string, ids []string, format string, scale float64) (map[string]string, error)
}

// DocumentCache stores raw fetched file payloads keyed by file key.
type DocumentCache interface {
	Open(path string) error
	Close() error

	// Get returns the cached payload and its file version. A miss returns
	// nil payload and no error.
	Get(fileKey string) (payload []byte, version string, err error)

	Put(fileKey, version string, payload []byte) error
	Evict(fileKey string) error
}
