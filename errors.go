package search

import (
	"errors"

	clienterrors "github.com/avasquez614/search/internal/errors"
)

// Error is returned by every Client operation. Use errors.As to inspect the
// index id, the operation and, for server errors, the status and body.
type Error = clienterrors.SearchError

// Kind tells which stage of a call failed.
type Kind = clienterrors.Kind

const (
	KindInvalidURL        = clienterrors.KindInvalidURL
	KindServer            = clienterrors.KindServer
	KindTransport         = clienterrors.KindTransport
	KindReservedFieldName = clienterrors.KindReservedFieldName
)

// Re-export sentinels so callers compare against a single symbol with
// errors.Is.
var (
	ErrInvalidURL        = clienterrors.ErrInvalidURL
	ErrServer            = clienterrors.ErrServer
	ErrTransport         = clienterrors.ErrTransport
	ErrReservedFieldName = clienterrors.ErrReservedFieldName
)

// ErrEmptyServerURL is returned by New when no server URL is given.
var ErrEmptyServerURL = errors.New("server url cannot be empty")

// IsServerError reports whether err is a non-2xx response from the server.
func IsServerError(err error) bool { return errors.Is(err, ErrServer) }

// IsTransportError reports whether err is a network or decoding failure.
func IsTransportError(err error) bool { return errors.Is(err, ErrTransport) }

// IsInvalidURL reports whether err comes from a malformed request URL.
func IsInvalidURL(err error) bool { return errors.Is(err, ErrInvalidURL) }

// IsReservedFieldName reports whether err is a local reserved-field violation.
func IsReservedFieldName(err error) bool { return errors.Is(err, ErrReservedFieldName) }
