package search

import (
	"io"

	"github.com/avasquez614/search/internal/api"
	"github.com/avasquez614/search/internal/types"
)

// Public type aliases so SDK consumers can import only the search package.
type (
	// Queries
	Query       = types.Query
	QueryString = types.QueryString
	QueryParams = types.QueryParams
	StructQuery = types.StructQuery

	// Requests
	UpdateRequest         = types.UpdateRequest
	FileUpdateRequest     = types.FileUpdateRequest
	DocumentUpdateRequest = types.DocumentUpdateRequest

	// Upload sources
	Content     = types.Content
	ContentFunc = types.ContentFunc
)

// ErrContentConsumed is returned when a ReaderContent is uploaded twice.
var ErrContentConsumed = types.ErrContentConsumed

// NewQueryParams returns an empty QueryParams.
func NewQueryParams() *QueryParams { return types.NewQueryParams() }

// NewStructQuery encodes v, a struct with `url` field tags, into a Query.
func NewStructQuery(v any) (StructQuery, error) { return types.NewStructQuery(v) }

// FileContent streams the file at path.
func FileContent(path string) Content { return types.FileContent(path) }

// BytesContent serves b.
func BytesContent(b []byte) Content { return types.BytesContent(b) }

// ReaderContent serves r once.
func ReaderContent(r io.Reader) Content { return types.ReaderContent(r) }

// FilenameFromID returns the file name UpdateFile sends for id.
func FilenameFromID(id string) string { return api.FilenameFromID(id) }
