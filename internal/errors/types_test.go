package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerError_Message(t *testing.T) {
	err := NewServerError("idx", "Commit", http.StatusInternalServerError, "500 Internal Server Error", "bad request")
	assert.Equal(t, "[idx] Commit failed: [Internal Server Error] bad request", err.Error())
	assert.Equal(t, "Internal Server Error", err.Status)
	assert.True(t, stderrors.Is(err, ErrServer))
	assert.False(t, stderrors.Is(err, ErrTransport))
}

func TestServerError_StatusFallback(t *testing.T) {
	err := NewServerError("", "Commit", http.StatusServiceUnavailable, "", "")
	assert.Equal(t, "Service Unavailable", err.Status)
	assert.Equal(t, "Commit failed: [Service Unavailable] ", err.Error())
}

func TestTransportError_UnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewTransportError("", "Delete for XML '1'", cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestReservedFieldNameError(t *testing.T) {
	err := NewReservedFieldNameError("idx", "Update for file '1'", []string{"indexId", "site", "id", "file"})
	assert.ErrorIs(t, err, ErrReservedFieldName)
	assert.Contains(t, err.Error(), "indexId, site, id, file")
}

func TestInvalidURLError(t *testing.T) {
	err := NewInvalidURLError("idx", "Commit", "::bad", stderrors.New("missing protocol scheme"))
	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.Contains(t, err.Error(), "Invalid URI: ::bad")
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewServerError("", "Commit", 500, "", ""))
	assert.Equal(t, KindServer, KindOf(wrapped))
	assert.Equal(t, Kind(0), KindOf(stderrors.New("plain")))

	var se *SearchError
	require.True(t, stderrors.As(wrapped, &se))
	assert.Equal(t, 500, se.StatusCode)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Server", KindServer.String())
	assert.Equal(t, "ReservedFieldName", KindReservedFieldName.String())
	assert.Equal(t, "Unknown(42)", Kind(42).String())
}
