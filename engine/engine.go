// Package engine builds client handles for the search engines that back a
// search server, for callers that need to talk to the engine directly.
package engine

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

// ErrNoServerURL is returned when Config.ServerURL is empty.
var ErrNoServerURL = errors.New("engine server url not configured")

// Config holds the connection settings of an engine.
type Config struct {
	// ServerURL is the engine's base URL, e.g. http://localhost:9200. A
	// comma-separated list selects several nodes.
	ServerURL string
	Username  string
	Password  string

	// Transport overrides the HTTP transport, mostly for tests.
	Transport http.RoundTripper
}

func (c Config) addresses() ([]string, error) {
	var addrs []string
	for _, a := range strings.Split(c.ServerURL, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	if len(addrs) == 0 {
		return nil, ErrNoServerURL
	}
	return addrs, nil
}

// NewElasticsearch returns an Elasticsearch client for cfg.
func NewElasticsearch(cfg Config) (*elasticsearch.Client, error) {
	addrs, err := cfg.addresses()
	if err != nil {
		return nil, err
	}
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addrs,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client creation error: %w", err)
	}
	return es, nil
}

// NewOpenSearch returns an OpenSearch client for cfg.
func NewOpenSearch(cfg Config) (*opensearchapi.Client, error) {
	addrs, err := cfg.addresses()
	if err != nil {
		return nil, err
	}
	client, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses: addrs,
			Username:  cfg.Username,
			Password:  cfg.Password,
			Transport: cfg.Transport,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client creation error: %w", err)
	}
	return client, nil
}

// Factory hands out a single Elasticsearch client built on first use.
// It is safe for concurrent use.
type Factory struct {
	Config Config

	once   sync.Once
	client *elasticsearch.Client
	err    error
}

// Elasticsearch returns the shared client, building it on the first call.
// A construction error is returned on every call.
func (f *Factory) Elasticsearch() (*elasticsearch.Client, error) {
	f.once.Do(func() {
		f.client, f.err = NewElasticsearch(f.Config)
	})
	return f.client, f.err
}
