package pagesum

import (
	"fmt"
	"strings"
)

// NormalizeURL percent-encodes the path, query and fragment of rawURL so
// that URLs pasted with spaces or other unsafe characters load correctly.
//
// The scheme and authority are left untouched. In the query, "=" and "&"
// keep their structural meaning and "+" is kept as an already-encoded
// space. Valid %XX escapes are never encoded twice, so normalizing an
// already-normalized URL returns it unchanged.
func NormalizeURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", Errorf(EINVALID, "URL required")
	}

	scheme, rest := splitScheme(rawURL)

	var authority string
	hasAuthority := strings.HasPrefix(rest, "//")
	if hasAuthority {
		rest = rest[2:]
		if i := strings.IndexAny(rest, "/?#"); i >= 0 {
			authority, rest = rest[:i], rest[i:]
		} else {
			authority, rest = rest, ""
		}
	}

	rest, fragment, _ := strings.Cut(rest, "#")
	path, query, _ := strings.Cut(rest, "?")

	var b strings.Builder
	if scheme != "" {
		b.WriteString(scheme)
		b.WriteByte(':')
	}
	if hasAuthority {
		b.WriteString("//")
		b.WriteString(authority)
	}
	b.WriteString(escape(path, "/;"))
	if query != "" {
		b.WriteByte('?')
		b.WriteString(escape(query, "=&+"))
	}
	if fragment != "" {
		b.WriteByte('#')
		b.WriteString(escape(fragment, "/"))
	}
	return b.String(), nil
}

// splitScheme splits "scheme:rest". A prefix only counts as a scheme when it
// starts with a letter and contains letters, digits, "+", "-" or ".".
func splitScheme(s string) (scheme, rest string) {
	i := strings.IndexByte(s, ':')
	if i <= 0 || !isAlpha(s[0]) {
		return "", s
	}
	for j := 1; j < i; j++ {
		c := s[j]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return "", s
		}
	}
	return s[:i], s[i+1:]
}

// escape percent-encodes every byte of s except unreserved characters, the
// bytes listed in safe, and existing %XX escapes.
func escape(s, safe string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c), strings.IndexByte(safe, c) >= 0:
			b.WriteByte(c)
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHex(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
