package api

import "testing"

func TestEncodeString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		charset string
		in      string
		want    string
	}{
		{charset: "UTF-8", in: "héllo €", want: "héllo €"},
		{charset: "ISO-8859-1", in: "é", want: "\xe9"},
		{charset: "ISO-8859-1", in: "€", want: "?"},
		{charset: "ISO-8859-1", in: "prix: 5€ œuvre", want: "prix: 5? ?uvre"},
		{charset: "windows-1252", in: "€", want: "\x80"},
	}
	for _, tc := range cases {
		got, err := encodeString(tc.charset, tc.in)
		if err != nil {
			t.Fatalf("%s %q: %v", tc.charset, tc.in, err)
		}
		if string(got) != tc.want {
			t.Fatalf("%s %q: got %q want %q", tc.charset, tc.in, got, tc.want)
		}
	}
}

func TestCheckCharset(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"UTF-8", "ISO-8859-1", "windows-1252"} {
		if err := CheckCharset(name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if err := CheckCharset("no-such-charset"); err == nil {
		t.Fatalf("expected error for unknown charset")
	}
}
