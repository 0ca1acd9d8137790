package figma

import (
	"context"
	"encoding/json"
	"fmt"

	"figlens/internal/domain"
	"figlens/internal/ports"
)

// CachedSource serves GetFile from a DocumentCache, falling back to the
// wrapped client on a miss. Node and image lookups always go upstream;
// their results are small and parameter-dependent.
type CachedSource struct {
	client *Client
	cache  ports.DocumentCache
}

var _ ports.FileSource = (*CachedSource)(nil)

// NewCachedSource wraps client with cache. cache must already be open.
func NewCachedSource(client *Client, cache ports.DocumentCache) *CachedSource {
	return &CachedSource{client: client, cache: cache}
}

// GetFile returns the cached document when present, otherwise fetches and
// stores the raw payload. Cache failures degrade to a plain fetch.
func (s *CachedSource) GetFile(ctx context.Context, fileKey string) (*domain.Document, error) {
	if payload, _, err := s.cache.Get(fileKey); err == nil && payload != nil {
		var doc domain.Document
		if err := json.Unmarshal(payload, &doc); err == nil {
			return &doc, nil
		}
		// Corrupt entry: drop it and refetch.
		_ = s.cache.Evict(fileKey)
	}

	payload, err := s.client.GetFileRaw(ctx, fileKey)
	if err != nil {
		return nil, err
	}
	var doc domain.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decoding file %s: %w", fileKey, err)
	}
	if err := s.cache.Put(fileKey, doc.Version, payload); err != nil {
		// A write failure only costs the next call a refetch.
		return &doc, nil
	}
	return &doc, nil
}

// GetNodes forwards to the wrapped client.
func (s *CachedSource) GetNodes(ctx context.Context, fileKey string, ids []string) (map[string]*domain.Node, error) {
	return s.client.GetNodes(ctx, fileKey, ids)
}

// GetImages forwards to the wrapped client.
func (s *CachedSource) GetImages(ctx context.Context, fileKey string, ids []string, format string, scale float64) (map[string]string, error) {
	return s.client.GetImages(ctx, fileKey, ids, format, scale)
}
