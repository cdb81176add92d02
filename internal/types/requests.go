package types

// ------------------------------
// Request Types
// ------------------------------

// UpdateRequest carries an XML document to be indexed.
type UpdateRequest struct {
	Site string
	ID   string
	XML  string
	// IgnoreRootInFieldNames tells the server to drop the root element name
	// when deriving field names from the XML.
	IgnoreRootInFieldNames bool
}

// FileUpdateRequest carries a binary file to be indexed.
type FileUpdateRequest struct {
	Site    string
	ID      string
	Content Content
	// AdditionalFields are sent as extra form fields, one part per value.
	AdditionalFields map[string][]string
}

// DocumentUpdateRequest is the legacy single-valued document upload.
//
// Deprecated: use FileUpdateRequest.
type DocumentUpdateRequest struct {
	Site             string
	ID               string
	Document         Content
	AdditionalFields map[string]string
}
