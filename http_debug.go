package search

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport logs every request and response it forwards, body included.
//
// Enable it with WithDebugLogging(true) or by exporting SEARCH_CLIENT_DEBUG=true
// (or DEBUG=true) before constructing the client. Each request gets a random
// request_id so the request and response lines can be matched up when calls
// run concurrently. Multipart bodies are streamed, so only their headers are
// dumped.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	reqID := uuid.NewString()

	if reqDump, err := httputil.DumpRequestOut(req, dumpableBody(req)); err == nil {
		log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// dumpableBody reports whether req's body can be dumped without consuming a
// stream the server still needs. Requests built from in-memory readers carry
// GetBody and can be replayed.
func dumpableBody(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// Either SEARCH_CLIENT_DEBUG=true or DEBUG=true turns it on.
func debugLoggingRequested() bool {
	return os.Getenv("SEARCH_CLIENT_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
