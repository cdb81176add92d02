package types

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sync"
)

// Content is a source of bytes uploaded as a multipart file part. Open is
// called once per request; the returned reader is closed by the caller.
type Content interface {
	Open() (io.ReadCloser, error)
}

// ContentFunc adapts a function to Content.
type ContentFunc func() (io.ReadCloser, error)

// Open implements Content.
func (f ContentFunc) Open() (io.ReadCloser, error) { return f() }

// FileContent streams the file at path.
func FileContent(path string) Content {
	return ContentFunc(func() (io.ReadCloser, error) { return os.Open(path) })
}

// BytesContent serves b. It may be opened any number of times.
func BytesContent(b []byte) Content {
	return ContentFunc(func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	})
}

// ErrContentConsumed is returned when a ReaderContent is opened twice.
var ErrContentConsumed = errors.New("content already consumed")

// ReaderContent serves r exactly once. r is closed after the upload when it
// implements io.Closer.
func ReaderContent(r io.Reader) Content {
	var once sync.Once
	return ContentFunc(func() (io.ReadCloser, error) {
		var rc io.ReadCloser
		once.Do(func() {
			if c, ok := r.(io.ReadCloser); ok {
				rc = c
			} else {
				rc = io.NopCloser(r)
			}
		})
		if rc == nil {
			return nil, ErrContentConsumed
		}
		return rc, nil
	})
}
