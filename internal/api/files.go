package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"sort"
	"strings"

	clienterrors "github.com/avasquez614/search/internal/errors"
	"github.com/avasquez614/search/internal/types"
)

// formField is one text part of a multipart form.
type formField struct {
	name  string
	value string
}

// filePart is the single binary part of a multipart form.
type filePart struct {
	name     string
	filename string
	content  types.Content
}

// UpdateFile uploads a binary file for indexing as multipart/form-data. The
// file part's filename is the last path segment of req.ID. Additional fields
// that shadow a reserved parameter are rejected before any I/O. A nil
// req.Content is reported as a transport error and no request is sent.
func UpdateFile(ctx context.Context, httpClient types.HTTPClient, serverURL, charset, indexID string, req types.FileUpdateRequest) (string, error) {
	op := fmt.Sprintf("Update for file '%s'", req.ID)
	if hits := types.ReservedCollisions(req.AdditionalFields, types.FileReservedNames()); len(hits) > 0 {
		return "", clienterrors.NewReservedFieldNameError(indexID, op, types.FileReservedNames())
	}

	var fields []formField
	if indexID != "" {
		fields = append(fields, formField{types.ParamIndexID, indexID})
	}
	fields = append(fields, formField{types.ParamSite, req.Site}, formField{types.ParamID, req.ID})
	for _, name := range sortedKeys(req.AdditionalFields) {
		for _, v := range req.AdditionalFields[name] {
			fields = append(fields, formField{name, v})
		}
	}

	c := call{indexID: indexID, op: op, method: http.MethodPost, url: BaseURL(serverURL, PathUpdateFile)}
	file := filePart{name: types.ParamFile, filename: FilenameFromID(req.ID), content: req.Content}
	return postMultipart(ctx, httpClient, charset, c, fields, file)
}

// UpdateDocument uploads a document through the legacy update-document
// endpoint. It does not support index selection. A nil req.Document is
// reported as a transport error and no request is sent.
//
// Deprecated: use UpdateFile.
func UpdateDocument(ctx context.Context, httpClient types.HTTPClient, serverURL, charset string, req types.DocumentUpdateRequest) (string, error) {
	op := fmt.Sprintf("Update for document '%s'", req.ID)
	if hits := types.ReservedCollisions(req.AdditionalFields, types.DocumentReservedNames()); len(hits) > 0 {
		return "", clienterrors.NewReservedFieldNameError("", op, types.DocumentReservedNames())
	}

	fields := []formField{{types.ParamSite, req.Site}, {types.ParamID, req.ID}}
	for _, name := range sortedKeys(req.AdditionalFields) {
		fields = append(fields, formField{name, req.AdditionalFields[name]})
	}

	c := call{op: op, method: http.MethodPost, url: BaseURL(serverURL, PathUpdateDocument)}
	file := filePart{name: types.ParamDocument, filename: FilenameFromID(req.ID), content: req.Document}
	return postMultipart(ctx, httpClient, charset, c, fields, file)
}

// FilenameFromID returns the last path segment of id, accepting both '/' and
// '\' as separators.
func FilenameFromID(id string) string {
	if i := strings.LastIndexAny(id, `/\`); i >= 0 {
		return id[i+1:]
	}
	return id
}

// postMultipart streams the form through a pipe so file content is never
// buffered whole in memory.
func postMultipart(ctx context.Context, httpClient types.HTTPClient, charset string, c call, fields []formField, file filePart) (string, error) {
	if file.content == nil {
		return "", clienterrors.NewTransportError(c.indexID, c.op, fmt.Errorf("no content for %s part", file.name))
	}
	encoded := make([][]byte, len(fields))
	for i, f := range fields {
		b, err := encodeString(charset, f.value)
		if err != nil {
			return "", clienterrors.NewTransportError(c.indexID, c.op, err)
		}
		encoded[i] = b
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	c.body = pr
	c.contentType = mw.FormDataContentType()

	req, err := newRequest(ctx, c)
	if err != nil {
		_ = pr.Close()
		return "", err
	}

	rc, err := file.content.Open()
	if err != nil {
		_ = pr.Close()
		return "", clienterrors.NewTransportError(c.indexID, c.op, fmt.Errorf("open %s: %w", file.filename, err))
	}

	go func() {
		defer func() { _ = rc.Close() }()
		pw.CloseWithError(writeForm(mw, charset, fields, encoded, file, rc))
	}()

	resp, err := send(httpClient, c, req)
	if err != nil {
		_ = pr.Close()
		return "", err
	}
	return readString(c, resp)
}

func writeForm(mw *multipart.Writer, charset string, fields []formField, encoded [][]byte, file filePart, r io.Reader) error {
	for i, f := range fields {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(f.name)))
		h.Set("Content-Type", "text/plain; charset="+charset)
		w, err := mw.CreatePart(h)
		if err != nil {
			return err
		}
		if _, err := w.Write(encoded[i]); err != nil {
			return err
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(file.name), escapeQuotes(file.filename)))
	h.Set("Content-Type", contentTypeFor(file.filename))
	w, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		return err
	}
	return mw.Close()
}

func contentTypeFor(filename string) string {
	if t := mime.TypeByExtension(filepath.Ext(filename)); t != "" {
		return t
	}
	return "application/octet-stream"
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
