package types

import (
	"net/http"
	"sort"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ------------------------------
// Request parameter names
// ------------------------------

const (
	ParamIndexID                = "indexId"
	ParamSite                   = "site"
	ParamID                     = "id"
	ParamIgnoreRootInFieldNames = "ignoreRootInFieldNames"
	ParamFile                   = "file"
	ParamDocument               = "document"
)

var (
	fileReserved     = [...]string{ParamIndexID, ParamSite, ParamID, ParamFile}
	documentReserved = [...]string{ParamSite, ParamID, ParamDocument}
)

// FileReservedNames returns the form fields an update-file request sets
// itself. Each call returns a fresh slice.
func FileReservedNames() []string { return append([]string(nil), fileReserved[:]...) }

// DocumentReservedNames returns the form fields the legacy update-document
// request sets itself. Each call returns a fresh slice.
func DocumentReservedNames() []string { return append([]string(nil), documentReserved[:]...) }

// ReservedCollisions returns, sorted, the keys of fields that appear in
// reserved. It returns nil when there is no collision.
func ReservedCollisions[V any](fields map[string]V, reserved []string) []string {
	var hits []string
	for _, name := range reserved {
		if _, ok := fields[name]; ok {
			hits = append(hits, name)
		}
	}
	sort.Strings(hits)
	return hits
}
