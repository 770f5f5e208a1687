// Package rest exposes and consumes content trees as flattened node records
// over HTTP. The client side implements content.Node on top of remote
// records with lazy child fetches; the handler side serves any record
// source under GET /nodes/*.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/canopyhq/canopy/internal/logging"
	"github.com/canopyhq/canopy/pkg/content"
)

// Client fetches node records from a canopy node server.
type Client struct {
	base   string
	hc     *http.Client
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient injects a custom *http.Client (timeouts, transports).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithClientLogger sets a structured logger for request diagnostics.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the server at baseURL (e.g.
// "http://cms.internal:8080").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		base:   strings.TrimRight(baseURL, "/"),
		hc:     http.DefaultClient,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Node fetches the record at path and wraps it as a traversable node.
// Children are fetched lazily, one request per child, as the traversal
// cursor advances.
func (c *Client) Node(ctx context.Context, path string) (content.Node, error) {
	rec, err := c.record(ctx, path)
	if err != nil {
		return nil, err
	}
	return &remoteNode{client: c, rec: rec}, nil
}

func (c *Client) record(ctx context.Context, path string) (*content.Record, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := c.base + "/nodes" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build node request: %w", err)
	}
	c.logger.Debug("fetching node", "url", url)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch node %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", path, content.ErrNotFound)
	default:
		return nil, fmt.Errorf("unexpected status %d fetching node %s", resp.StatusCode, path)
	}

	var rec content.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode node %s: %w", path, err)
	}
	return &rec, nil
}

// remoteNode adapts a flattened record to the node contract.
type remoteNode struct {
	client *Client
	rec    *content.Record
}

func (n *remoteNode) Path() string        { return n.rec.Path }
func (n *remoteNode) PrimaryType() string { return n.rec.PrimaryType }

// Record exposes the underlying flattened record (title, body, properties).
func (n *remoteNode) Record() content.Record { return *n.rec }

func (n *remoteNode) Children(_ context.Context) (content.Cursor, error) {
	return &remoteCursor{client: n.client, paths: n.rec.Children}, nil
}

// remoteCursor fetches each child record on Next, so walks cut short by
// limits or Break never pay for unvisited children.
type remoteCursor struct {
	client *Client
	paths  []string
	pos    int
}

func (c *remoteCursor) HasNext() bool {
	return c.pos < len(c.paths)
}

func (c *remoteCursor) Next(ctx context.Context) (content.Node, error) {
	if c.pos >= len(c.paths) {
		return nil, content.ErrCursorExhausted
	}
	path := c.paths[c.pos]
	c.pos++
	return c.client.Node(ctx, path)
}
