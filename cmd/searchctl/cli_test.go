package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	mu    sync.Mutex
	paths []string
	forms []map[string][]string
}

func (f *fakeServer) handler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, r.URL.Path+"?"+r.URL.RawQuery)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		_ = r.ParseMultipartForm(1 << 20)
		f.forms = append(f.forms, r.MultipartForm.Value)
	}
	if r.URL.Path == "/api/1/search" {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound":3}`))
		return
	}
	_, _ = w.Write([]byte("OK"))
}

func run(t *testing.T, srvURL string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--server-url", srvURL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Operations(t *testing.T) {
	fs := &fakeServer{}
	srv := httptest.NewServer(http.HandlerFunc(fs.handler))
	defer srv.Close()

	out, err := run(t, srv.URL, "search", "-i", "idx", "-q", "q=*")
	require.NoError(t, err)
	assert.Contains(t, out, `"numFound": 3`)

	out, err = run(t, srv.URL, "update", "--site", "s", "--id", "1", "--xml", "<a/>")
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)

	_, err = run(t, srv.URL, "delete", "--site", "s", "--id", "1")
	require.NoError(t, err)

	_, err = run(t, srv.URL, "commit", "--index", "idx")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))
	_, err = run(t, srv.URL, "update-file", "--site", "s", "--id", "docs/report.pdf", "--path", path,
		"--field", "tags=a", "--field", "tags=b")
	require.NoError(t, err)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	assert.Equal(t, []string{
		"/api/1/search?indexId=idx&q=*",
		"/api/1/update?site=s&id=1&ignoreRootInFieldNames=true",
		"/api/1/delete?site=s&id=1",
		"/api/1/commit?indexId=idx",
		"/api/1/update-file?",
	}, fs.paths)
	require.Len(t, fs.forms, 1)
	assert.Equal(t, []string{"a", "b"}, fs.forms[0]["tags"])
	assert.Equal(t, []string{"docs/report.pdf"}, fs.forms[0]["id"])
}

func TestCLI_UpdateNeedsOneSource(t *testing.T) {
	_, err := run(t, "http://127.0.0.1:1", "update", "--site", "s", "--id", "1")
	require.Error(t, err)
}

func TestCLI_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index locked", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := run(t, srv.URL, "commit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index locked")
}

func TestParseFields(t *testing.T) {
	got, err := parseFields([]string{"a=1", "a=2", "b="})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"a": {"1", "2"}, "b": {""}}, got)

	_, err = parseFields([]string{"novalue"})
	require.Error(t, err)

	got, err = parseFields(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCLI_JSONLogsCarryStack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index locked", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--server-url", srv.URL, "--log-json", "commit"})
	require.Error(t, cmd.Execute())

	logs := errOut.String()
	assert.Contains(t, logs, `"service":"searchctl"`)
	assert.Contains(t, logs, `"message":"operation failed"`)
	assert.Contains(t, logs, `"stack"`)
}
