package encoding

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		name    string
		page    string
		wantErr bool
	}{
		{"empty name resolves to default", "", false},
		{"utf-8", "UTF-8", false},
		{"ansi_1252", "ANSI_1252", false},
		{"lowercase", "ansi_1251", false},
		{"bare number", "1250", false},
		{"surrounding whitespace", " ansi_1252 ", false},
		{"unknown page", "ansi_9999", true},
		{"garbage", "not-a-codepage", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := Lookup(tc.page)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Lookup(%q) succeeded, want error", tc.page)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tc.page, err)
			}
			if enc == nil {
				t.Fatalf("Lookup(%q) returned nil encoding", tc.page)
			}
		})
	}
}

func TestLookup_ResolvesExpectedEncodings(t *testing.T) {
	enc, err := Lookup("ANSI_1252")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if enc != charmap.Windows1252 {
		t.Errorf("ANSI_1252 resolved to %v, want Windows1252", enc)
	}

	enc, err = Lookup("")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if enc != unicode.UTF8 {
		t.Errorf("empty name resolved to %v, want UTF8", enc)
	}
}

func TestLookup_DecodesCodePageBytes(t *testing.T) {
	// 0xE9 is é in Windows-1252.
	enc, err := Lookup("ansi_1252")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	decoded, err := enc.NewDecoder().Bytes([]byte{0xE9})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(decoded) != "é" {
		t.Errorf("decoded %q, want %q", decoded, "é")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected at least one registered code page")
	}
	seen := false
	for _, n := range names {
		if n == "ansi_1252" {
			seen = true
		}
	}
	if !seen {
		t.Error("expected ansi_1252 in registered names")
	}
}
