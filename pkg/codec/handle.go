package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// CanonicalHandle parses hexadecimal handle text and re-renders it as
// uppercase hex without leading zeros, so "00a3" becomes "A3" and "0"
// stays "0". Canonicalization is idempotent. Text that is not valid
// base-16 is a FormatError.
func CanonicalHandle(text string) (string, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", &FormatError{Position: -1, Msg: "empty handle text"}
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return "", &FormatError{Position: -1, Msg: fmt.Sprintf("malformed handle text %q", text)}
	}
	return strings.ToUpper(strconv.FormatUint(n, 16)), nil
}
