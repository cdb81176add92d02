package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	clienterrors "github.com/avasquez614/search/internal/errors"
	"github.com/avasquez614/search/internal/types"
)

// Version root prepended to every endpoint path.
const RootPath = "/api/1"

// Endpoint paths relative to RootPath.
const (
	PathSearch         = "/search"
	PathUpdate         = "/update"
	PathDelete         = "/delete"
	PathCommit         = "/commit"
	PathUpdateFile     = "/update-file"
	PathUpdateDocument = "/update-document"
)

// BaseURL returns serverURL + RootPath + path. serverURL is expected to have
// its trailing slashes stripped already.
func BaseURL(serverURL, path string) string {
	return serverURL + RootPath + path
}

// BaseURLWithIndex is BaseURL plus the indexId parameter when indexID is set.
func BaseURLWithIndex(serverURL, path, indexID string) string {
	u := BaseURL(serverURL, path)
	if indexID != "" {
		u = AddParam(u, types.ParamIndexID, indexID)
	}
	return u
}

// AddParam appends name=value to rawURL, query-encoding both as UTF-8.
func AddParam(rawURL, name, value string) string {
	return AddQueryStringFragment(rawURL, url.QueryEscape(name)+"="+url.QueryEscape(value))
}

// AddQueryStringFragment appends an already-encoded fragment to rawURL using
// '?' or '&' as appropriate. A leading '?' or '&' on fragment is ignored.
func AddQueryStringFragment(rawURL, fragment string) string {
	fragment = strings.TrimLeft(fragment, "?&")
	if fragment == "" {
		return rawURL
	}
	if strings.Contains(rawURL, "?") {
		if strings.HasSuffix(rawURL, "?") || strings.HasSuffix(rawURL, "&") {
			return rawURL + fragment
		}
		return rawURL + "&" + fragment
	}
	return rawURL + "?" + fragment
}

// call describes one round trip.
type call struct {
	indexID     string
	op          string
	method      string
	url         string
	body        io.Reader
	contentType string
}

// newRequest validates c.url and builds the request.
func newRequest(ctx context.Context, c call) (*http.Request, error) {
	if _, err := url.ParseRequestURI(c.url); err != nil {
		return nil, clienterrors.NewInvalidURLError(c.indexID, c.op, c.url, err)
	}
	req, err := http.NewRequestWithContext(ctx, c.method, c.url, c.body)
	if err != nil {
		return nil, clienterrors.NewInvalidURLError(c.indexID, c.op, c.url, err)
	}
	if c.contentType != "" {
		req.Header.Set("Content-Type", c.contentType)
	}
	return req, nil
}

// send issues req and maps failures. On success the caller owns resp.Body.
func send(httpClient types.HTTPClient, c call, req *http.Request) (*http.Response, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, clienterrors.NewTransportError(c.indexID, c.op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		body, _ := io.ReadAll(resp.Body)
		return nil, clienterrors.NewServerError(c.indexID, c.op, resp.StatusCode, resp.Status, string(body))
	}
	return resp, nil
}

// do builds and sends c in one step.
func do(ctx context.Context, httpClient types.HTTPClient, c call) (*http.Response, error) {
	req, err := newRequest(ctx, c)
	if err != nil {
		return nil, err
	}
	return send(httpClient, c, req)
}

// doString performs c and returns the response body as a string.
func doString(ctx context.Context, httpClient types.HTTPClient, c call) (string, error) {
	resp, err := do(ctx, httpClient, c)
	if err != nil {
		return "", err
	}
	return readString(c, resp)
}

func readString(c call, resp *http.Response) (string, error) {
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", clienterrors.NewTransportError(c.indexID, c.op, err)
	}
	return string(b), nil
}
