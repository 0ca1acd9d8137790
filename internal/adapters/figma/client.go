package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"figlens/internal/domain"
	"figlens/internal/ports"
)

// DefaultBaseURL is the public REST endpoint of the design-file service.
const DefaultBaseURL = "https://api.figma.com/v1"

const defaultTimeout = 60 * time.Second

var (
	// ErrUnauthorized means the access token was rejected.
	ErrUnauthorized = errors.New("access token rejected")
	// ErrNotFound means the file key does not resolve to a file.
	ErrNotFound = errors.New("file not found")
)

// APIError is a non-200 response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusForbidden || e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// Client talks to the files/nodes/images endpoints. It implements
// ports.FileSource.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ ports.FileSource = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (tests point this at a local server).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a client authenticating with the given access token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetFile fetches the full document for a file key.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*domain.Document, error) {
	var doc domain.Document
	if err := c.get(ctx, "/files/"+url.PathEscape(fileKey), nil, &doc); err != nil {
		return nil, fmt.Errorf("fetching file %s: %w", fileKey, err)
	}
	return &doc, nil
}

// GetFileRaw fetches the document payload without decoding it; the caller
// owns caching the bytes.
func (c *Client) GetFileRaw(ctx context.Context, fileKey string) ([]byte, error) {
	body, err := c.getRaw(ctx, "/files/"+url.PathEscape(fileKey), nil)
	if err != nil {
		return nil, fmt.Errorf("fetching file %s: %w", fileKey, err)
	}
	return body, nil
}

type nodesResponse struct {
	Nodes map[string]struct {
		Document *domain.Node `json:"document"`
	} `json:"nodes"`
}

// GetNodes fetches specific nodes by ID. IDs the service does not know are
// simply absent from the result.
func (c *Client) GetNodes(ctx context.Context, fileKey string, ids []string) (map[string]*domain.Node, error) {
	query := url.Values{"ids": {strings.Join(ids, ",")}}
	var resp nodesResponse
	if err := c.get(ctx, "/files/"+url.PathEscape(fileKey)+"/nodes", query, &resp); err != nil {
		return nil, fmt.Errorf("fetching nodes of %s: %w", fileKey, err)
	}
	nodes := make(map[string]*domain.Node, len(resp.Nodes))
	for id, entry := range resp.Nodes {
		if entry.Document != nil {
			nodes[id] = entry.Document
		}
	}
	return nodes, nil
}

type imagesResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// GetImages resolves export URLs for the given node IDs.
func (c *Client) GetImages(ctx context.Context, fileKey string, ids []string, format string, scale float64) (map[string]string, error) {
	query := url.Values{"ids": {strings.Join(ids, ",")}}
	if format != "" {
		query.Set("format", format)
	}
	if scale > 0 {
		query.Set("scale", strconv.FormatFloat(scale, 'f', -1, 64))
	}
	var resp imagesResponse
	if err := c.get(ctx, "/images/"+url.PathEscape(fileKey), query, &resp); err != nil {
		return nil, fmt.Errorf("exporting images of %s: %w", fileKey, err)
	}
	if resp.Err != "" {
		return nil, fmt.Errorf("exporting images of %s: %s", fileKey, resp.Err)
	}
	return resp.Images, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.getRaw(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Figma-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: apiMessage(body)}
	}
	return body, nil
}

// apiMessage pulls the error description out of an error payload, if any.
func apiMessage(body []byte) string {
	var payload struct {
		Err     string `json:"err"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return ""
	}
	if payload.Err != "" {
		return payload.Err
	}
	return payload.Message
}
