package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	clienterrors "github.com/avasquez614/search/internal/errors"
	"github.com/avasquez614/search/internal/types"
)

// Search runs query against the index and returns the decoded JSON object.
// The query string is appended after the optional indexId parameter exactly
// as q renders it. A 2xx body that is not a JSON object, including null, is
// reported as a transport error.
func Search(ctx context.Context, httpClient types.HTTPClient, serverURL, indexID string, q types.Query) (map[string]any, error) {
	u := BaseURLWithIndex(serverURL, PathSearch, indexID)
	u = AddQueryStringFragment(u, q.ToQueryString())

	c := call{
		indexID: indexID,
		op:      fmt.Sprintf("Search for query %v", q),
		method:  http.MethodGet,
		url:     u,
	}
	resp, err := do(ctx, httpClient, c)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, clienterrors.NewTransportError(indexID, c.op, fmt.Errorf("decode response: %w", err))
	}
	if result == nil {
		return nil, clienterrors.NewTransportError(indexID, c.op, errors.New("decode response: body is null"))
	}
	return result, nil
}
