package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	clienterrors "github.com/avasquez614/search/internal/errors"
	"github.com/avasquez614/search/internal/types"
)

// Update posts an XML document for indexing. The body is encoded in charset
// and sent as text/xml.
func Update(ctx context.Context, httpClient types.HTTPClient, serverURL, charset, indexID string, req types.UpdateRequest) (string, error) {
	u := BaseURLWithIndex(serverURL, PathUpdate, indexID)
	u = AddParam(u, types.ParamSite, req.Site)
	u = AddParam(u, types.ParamID, req.ID)
	u = AddParam(u, types.ParamIgnoreRootInFieldNames, strconv.FormatBool(req.IgnoreRootInFieldNames))

	op := fmt.Sprintf("Update for XML '%s'", req.ID)
	body, err := encodeString(charset, req.XML)
	if err != nil {
		return "", clienterrors.NewTransportError(indexID, op, err)
	}

	return doString(ctx, httpClient, call{
		indexID:     indexID,
		op:          op,
		method:      http.MethodPost,
		url:         u,
		body:        bytes.NewReader(body),
		contentType: "text/xml; charset=" + charset,
	})
}

// Delete removes a document from the index.
func Delete(ctx context.Context, httpClient types.HTTPClient, serverURL, indexID, site, id string) (string, error) {
	u := BaseURLWithIndex(serverURL, PathDelete, indexID)
	u = AddParam(u, types.ParamSite, site)
	u = AddParam(u, types.ParamID, id)

	return doString(ctx, httpClient, call{
		indexID: indexID,
		op:      fmt.Sprintf("Delete for XML '%s'", id),
		method:  http.MethodPost,
		url:     u,
	})
}

// Commit asks the server to make pending writes visible to searches.
func Commit(ctx context.Context, httpClient types.HTTPClient, serverURL, indexID string) (string, error) {
	return doString(ctx, httpClient, call{
		indexID: indexID,
		op:      "Commit",
		method:  http.MethodPost,
		url:     BaseURLWithIndex(serverURL, PathCommit, indexID),
	})
}
