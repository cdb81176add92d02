// Package search is a client for a remote search server's REST API. It turns
// search, update, delete, commit and file-upload calls into HTTP requests and
// reports every failure as a single *Error type.
package search

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/avasquez614/search/internal/api"
)

// Service is the set of operations a search server exposes.
type Service interface {
	Search(ctx context.Context, indexID string, q Query) (map[string]any, error)
	Update(ctx context.Context, indexID string, req UpdateRequest) (string, error)
	Delete(ctx context.Context, indexID, site, id string) (string, error)
	Commit(ctx context.Context, indexID string) (string, error)
	UpdateFile(ctx context.Context, indexID string, req FileUpdateRequest) (string, error)
}

var _ Service = (*Client)(nil)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to one search server. It holds no per-call state and is safe
// for concurrent use.
type Client struct {
	serverURL string
	charset   string
	http      *http.Client
}

// New constructs a Client for serverURL. Trailing slashes on serverURL are
// stripped. An empty index id in any call targets the server's default index.
func New(serverURL string, opts ...Option) (*Client, error) {
	serverURL = strings.TrimRight(serverURL, "/")
	if serverURL == "" {
		return nil, ErrEmptyServerURL
	}

	c := &Client{
		serverURL: serverURL,
		charset:   api.DefaultCharset,
		http:      &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ServerURL returns the configured server URL without trailing slashes.
func (c *Client) ServerURL() string { return c.serverURL }

// Charset returns the charset used for XML bodies and form fields.
func (c *Client) Charset() string { return c.charset }

// --------------------------------------------------------------------
// Operations - delegated to internal/api
// --------------------------------------------------------------------

// Search runs q against indexID and returns the server's JSON response.
func (c *Client) Search(ctx context.Context, indexID string, q Query) (map[string]any, error) {
	return instrument(opSearch, func() (map[string]any, error) {
		return api.Search(ctx, c.http, c.serverURL, indexID, q)
	})
}

// Update indexes an XML document.
func (c *Client) Update(ctx context.Context, indexID string, req UpdateRequest) (string, error) {
	return instrument(opUpdate, func() (string, error) {
		return api.Update(ctx, c.http, c.serverURL, c.charset, indexID, req)
	})
}

// Delete removes the document id of site from indexID.
func (c *Client) Delete(ctx context.Context, indexID, site, id string) (string, error) {
	return instrument(opDelete, func() (string, error) {
		return api.Delete(ctx, c.http, c.serverURL, indexID, site, id)
	})
}

// Commit makes pending writes on indexID visible to searches.
func (c *Client) Commit(ctx context.Context, indexID string) (string, error) {
	return instrument(opCommit, func() (string, error) {
		return api.Commit(ctx, c.http, c.serverURL, indexID)
	})
}

// UpdateFile uploads a binary file to be parsed and indexed by the server.
// A request without Content fails with a transport error before anything is
// sent.
func (c *Client) UpdateFile(ctx context.Context, indexID string, req FileUpdateRequest) (string, error) {
	return instrument(opUpdateFile, func() (string, error) {
		return api.UpdateFile(ctx, c.http, c.serverURL, c.charset, indexID, req)
	})
}

// UpdateDocument uploads a document through the legacy endpoint, which always
// targets the default index.
//
// Deprecated: use UpdateFile.
func (c *Client) UpdateDocument(ctx context.Context, req DocumentUpdateRequest) (string, error) {
	return instrument(opUpdateDocument, func() (string, error) {
		return api.UpdateDocument(ctx, c.http, c.serverURL, c.charset, req)
	})
}
