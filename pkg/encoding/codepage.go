// Package encoding maps DXF code-page names to text encodings.
//
// Text fields in binary DXF are stored as null-terminated byte runs in the
// drawing's code page (the $DWGCODEPAGE header variable). This package
// resolves the code-page names emitted by CAD applications to the
// golang.org/x/text encodings that decode them. UTF-8 is the default for
// modern drawings.
package encoding

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Default is the encoding used when a drawing does not declare a code page.
var Default = unicode.UTF8

// codePages maps lowercase $DWGCODEPAGE names to encodings. Names appear
// in the wild both with and without the "ansi_" prefix.
var codePages = map[string]encoding.Encoding{
	"utf-8":     unicode.UTF8,
	"utf8":      unicode.UTF8,
	"ansi_1250": charmap.Windows1250,
	"ansi_1251": charmap.Windows1251,
	"ansi_1252": charmap.Windows1252,
	"ansi_1253": charmap.Windows1253,
	"ansi_1254": charmap.Windows1254,
	"ansi_1255": charmap.Windows1255,
	"ansi_1256": charmap.Windows1256,
	"ansi_1257": charmap.Windows1257,
	"ansi_1258": charmap.Windows1258,
	"1250":      charmap.Windows1250,
	"1251":      charmap.Windows1251,
	"1252":      charmap.Windows1252,
	"1253":      charmap.Windows1253,
	"1254":      charmap.Windows1254,
	"1255":      charmap.Windows1255,
	"1256":      charmap.Windows1256,
	"1257":      charmap.Windows1257,
	"1258":      charmap.Windows1258,
	"ansi_874":  charmap.Windows874,
	"874":       charmap.Windows874,
}

// Lookup resolves a code-page name to an encoding. Matching is
// case-insensitive. An empty name resolves to Default.
func Lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		return Default, nil
	}
	enc, ok := codePages[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown code page %q", name)
	}
	return enc, nil
}

// Names returns the recognized code-page names, for diagnostics.
func Names() []string {
	names := make([]string, 0, len(codePages))
	for name := range codePages {
		names = append(names, name)
	}
	return names
}
