package validation

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when upload bytes are not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8 text")

// DecodeText returns the upload content as a string, failing on bytes that are
// not valid UTF-8.
func DecodeText(name string, content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", fmt.Errorf("decode %s: %w", name, ErrInvalidEncoding)
	}
	return string(content), nil
}

// BaseName strips any directory components and the last extension from an
// upload name: "orders.sql" -> "orders", "a/b/c.tar.gz" -> "c.tar". Leading
// dots are not treated as an extension separator.
func BaseName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := path.Base(name)
	if base == "." || base == "/" {
		return ""
	}
	trimmed := strings.TrimLeft(base, ".")
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return base
	}
	return base[:len(base)-len(trimmed)+idx]
}

// IsValidPrompt reports whether a free-form instruction has any content.
func IsValidPrompt(prompt string) bool {
	return strings.TrimSpace(prompt) != ""
}
