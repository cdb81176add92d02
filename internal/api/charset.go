package api

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCharset is used when the client is not configured with one.
const DefaultCharset = "UTF-8"

// CheckCharset reports whether name is a charset the client can encode to.
func CheckCharset(name string) error {
	_, err := lookupCharset(name)
	return err
}

// lookupCharset resolves name against the IANA registry. Names the registry
// knows but x/text cannot encode are unsupported.
func lookupCharset(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return enc, nil
}

// encodeString converts s to the bytes of charset. Characters the charset
// cannot represent are written as '?'.
func encodeString(charset, s string) ([]byte, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}
	if out, err := enc.NewEncoder().String(s); err == nil {
		return []byte(out), nil
	}

	check := enc.NewEncoder()
	var sb strings.Builder
	for _, r := range s {
		if _, err := check.String(string(r)); err != nil {
			sb.WriteByte('?')
			continue
		}
		sb.WriteRune(r)
	}
	out, err := enc.NewEncoder().String(sb.String())
	if err != nil {
		return nil, fmt.Errorf("encode to %s: %w", charset, err)
	}
	return []byte(out), nil
}
