package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NewServerError builds a KindServer error from a non-2xx response. The
// status text is taken from the response line when present, falling back to
// the canonical text for the code.
func NewServerError(indexID, op string, statusCode int, status, body string) *SearchError {
	return &SearchError{
		Kind:       KindServer,
		IndexID:    indexID,
		Op:         op,
		StatusCode: statusCode,
		Status:     statusText(statusCode, status),
		Body:       body,
	}
}

// NewTransportError wraps a network or decoding failure.
func NewTransportError(indexID, op string, err error) *SearchError {
	return &SearchError{Kind: KindTransport, IndexID: indexID, Op: op, Err: err}
}

// NewInvalidURLError reports a URL that failed to parse.
func NewInvalidURLError(indexID, op, rawURL string, err error) *SearchError {
	return &SearchError{
		Kind:    KindInvalidURL,
		IndexID: indexID,
		Op:      op,
		Err:     fmt.Errorf("%s: %w", rawURL, err),
	}
}

// NewReservedFieldNameError reports additional fields that shadow reserved
// request parameters.
func NewReservedFieldNameError(indexID, op string, reserved []string) *SearchError {
	return &SearchError{
		Kind:    KindReservedFieldName,
		IndexID: indexID,
		Op:      op,
		Err: fmt.Errorf("an additional field shouldn't have the following names: %s",
			strings.Join(reserved, ", ")),
	}
}

// statusText strips the numeric prefix from a response status line
// ("500 Internal Server Error" -> "Internal Server Error").
func statusText(code int, status string) string {
	prefix := fmt.Sprintf("%d ", code)
	if s := strings.TrimPrefix(status, prefix); s != "" && s != status {
		return s
	}
	if status != "" {
		return status
	}
	return http.StatusText(code)
}
