package api

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// countingRT counts round trips and fails them all.
type countingRT struct{ n int32 }

func (c *countingRT) RoundTrip(*http.Request) (*http.Response, error) {
	atomic.AddInt32(&c.n, 1)
	return nil, fmt.Errorf("unexpected request")
}

func (c *countingRT) calls() int { return int(atomic.LoadInt32(&c.n)) }

// recorded captures what a test server received.
type recorded struct {
	method      string
	path        string
	rawQuery    string
	contentType string
	body        string
}
