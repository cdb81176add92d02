package search

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avasquez614/search/internal/api"
)

// Option configures a Client during construction in New.
//
// Options are applied in order, so WithDebugLogging should come after
// WithHTTPClient if both are used. Options must be deterministic and side-effect
// free.
type Option func(*Client) error

// WithHTTPClient makes the Client use a copy of hc. The copy keeps hc's
// transport, so connection pools are shared, while later options never
// mutate the caller's value.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single round trip, including reading the response.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithCharset sets the charset used to encode XML update bodies and
// multipart text fields. It defaults to UTF-8.
func WithCharset(charset string) Option {
	return func(c *Client) error {
		if err := api.CheckCharset(charset); err != nil {
			return err
		}
		c.charset = charset
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: request and response
// bodies, including document content, end up in the logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.http.Transport.(*debugTransport); ok {
			return nil
		}
		c.http.Transport = &debugTransport{base: c.http.Transport}
		return nil
	}
}
