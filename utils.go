package tweeter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsValidResourceName reports whether name can be read from resource storage.
// A valid name:
//   - is not empty, "." or "/"
//   - is relative and does not end with "/"
//   - has no ".." and no "." or empty segments
//   - has no backslash, control character or whitespace
//   - is valid UTF-8
func IsValidResourceName(name string) bool {
	if name == "" || name == "/" || name == "." {
		return false
	}

	if name[0] == '/' || strings.HasSuffix(name, "/") {
		return false
	}

	if strings.Contains(name, "..") || strings.Contains(name, "//") {
		return false
	}

	if strings.HasPrefix(name, "./") || strings.Contains(name, "/./") || strings.HasSuffix(name, "/.") {
		return false
	}

	if strings.ContainsRune(name, '\\') {
		return false
	}

	return printable(name)
}

// IsValidRequestPath reports whether p can be a key of the route table.
// Request paths start with "/", carry no query or fragment and contain no
// control character or whitespace. They are matched as written, so no
// other normalisation is required.
func IsValidRequestPath(p string) bool {
	if !strings.HasPrefix(p, "/") {
		return false
	}

	if strings.ContainsAny(p, "?#") {
		return false
	}

	return printable(p)
}

func printable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}

	for _, r := range s {
		if r < 0x20 || r == 0x7f || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
