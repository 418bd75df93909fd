// Package cleanpath normalizes HTTP request paths into a single canonical
// form. See doc.go for an overview.
package cleanpath

import "strings"

// IsCanonical reports whether p is already in canonical form, meaning a
// full canonicalization pass would return it unchanged. It performs a
// single byte scan and never allocates, which makes it suitable as a
// per-request fast path.
//
// The check is conservative for segments that start with a dot (e.g.
// "/.well-known/"): those return false here even though Canonicalize
// leaves them untouched. Callers that compare the canonicalized result
// to the input (as the middleware does) are unaffected. That is the
// only conservative shape; everything else the scan rejects really is
// rewritten by Canonicalize.
func IsCanonical(p string) bool {
	n := len(p)
	if n == 0 || p[0] != '/' {
		return false
	}

	for i := 1; i < n; i++ {
		if p[i-1] == '/' && (p[i] == '/' || p[i] == '.') {
			// Doubled separator, or a segment reachable from a
			// separator that starts with "." (covers ".", "..",
			// and trailing lone dots).
			return false
		}
	}

	// A canonical path ends in a separator unless its final segment has
	// a file extension, and never both.
	return hasExtension(p) != (p[n-1] == '/')
}

// Canonicalize returns the canonical form of p:
//
//   - repeated separators are merged into one,
//   - "." segments are removed and ".." segments are resolved, clamping
//     at the root rather than underflowing,
//   - a trailing separator is appended unless the final segment has a
//     file extension and the original path did not end in a separator.
//
// The result always begins with a single leading "/"; inputs without one
// are treated as rooted. The root itself stays "/". Canonicalize is a
// pure function and is safe for concurrent use.
func Canonicalize(p string) string {
	trailingSlash := strings.HasSuffix(p, "/")

	// Resolve segments left to right onto an output stack.
	segs := make([]string, 0, 8)
	for i := 0; i < len(p); {
		for i < len(p) && p[i] == '/' {
			i++
		}
		start := i
		for i < len(p) && p[i] != '/' {
			i++
		}
		switch seg := p[start:i]; seg {
		case "", ".":
			// Empty segment from a doubled separator, or a
			// no-op segment. Skip.
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, seg)
		}
	}

	if len(segs) == 0 {
		return "/"
	}

	// The root never gains an extra separator; every other path ends in
	// one unless its final segment keeps an extension-terminated form.
	endSlash := trailingSlash || !hasExtension(segs[len(segs)-1])

	var b strings.Builder
	b.Grow(len(p) + 1)
	for _, seg := range segs {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	if endSlash {
		b.WriteByte('/')
	}
	return b.String()
}

// Canonical canonicalizes p and reports whether the result differs from
// the input. It short-circuits through IsCanonical so already-clean paths
// cost a single scan and no allocation.
func Canonical(p string) (string, bool) {
	if IsCanonical(p) {
		return p, false
	}
	clean := Canonicalize(p)
	return clean, clean != p
}

// hasExtension reports whether the final segment of p has a non-empty
// suffix after its last dot. A bare trailing dot ("/m.") does not count.
func hasExtension(p string) bool {
	i := strings.LastIndexByte(p, '.')
	if i < 0 {
		return false
	}
	suffix := p[i+1:]
	return suffix != "" && strings.IndexByte(suffix, '/') < 0
}
