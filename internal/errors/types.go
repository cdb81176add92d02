// Package errors defines the single error type returned by every client
// operation and the taxonomy used to tell failures apart.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies where a request failed.
type Kind int

const (
	// KindInvalidURL means the request URL could not be built. It indicates a
	// bug in URL construction rather than bad caller input.
	KindInvalidURL Kind = iota + 1

	// KindServer means the server answered with a non-2xx status.
	KindServer

	// KindTransport covers every other I/O failure: dial, write, read, decode.
	KindTransport

	// KindReservedFieldName means the caller supplied an additional field whose
	// name collides with a reserved request parameter. No request was sent.
	KindReservedFieldName
)

// Sentinels matched by SearchError.Is, one per Kind.
var (
	ErrInvalidURL        = stderrors.New("invalid url")
	ErrServer            = stderrors.New("server error")
	ErrTransport         = stderrors.New("transport error")
	ErrReservedFieldName = stderrors.New("reserved field name")
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "InvalidURL"
	case KindServer:
		return "Server"
	case KindTransport:
		return "Transport"
	case KindReservedFieldName:
		return "ReservedFieldName"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidURL:
		return ErrInvalidURL
	case KindServer:
		return ErrServer
	case KindTransport:
		return ErrTransport
	case KindReservedFieldName:
		return ErrReservedFieldName
	default:
		return nil
	}
}

// SearchError is the normalized failure of a client operation.
type SearchError struct {
	Kind    Kind
	IndexID string // empty when the server default index was targeted
	Op      string // operation context, e.g. "Commit" or "Update for XML 'id'"

	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Status     string // HTTP status text
	Body       string // response body for diagnosis

	Err error // underlying cause, may be nil for server errors
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	prefix := ""
	if e.IndexID != "" {
		prefix = "[" + e.IndexID + "] "
	}
	switch e.Kind {
	case KindServer:
		return fmt.Sprintf("%s%s failed: [%s] %s", prefix, e.Op, e.Status, e.Body)
	case KindInvalidURL:
		return fmt.Sprintf("%sInvalid URI: %v", prefix, e.Err)
	case KindReservedFieldName:
		return fmt.Sprintf("%s%s", prefix, e.Err)
	default:
		return fmt.Sprintf("%s%s failed: %v", prefix, e.Op, e.Err)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *SearchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the sentinel for e's Kind.
func (e *SearchError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of err, or 0 when err is not a *SearchError.
func KindOf(err error) Kind {
	var se *SearchError
	if stderrors.As(err, &se) {
		return se.Kind
	}
	return 0
}
