package middleware

import "strings"

// matchPath checks if a request path matches an exclusion pattern.
// Supports exact match and prefix match (pattern ending with *).
func matchPath(path, pattern string) bool {
	if n := len(pattern); n > 0 && pattern[n-1] == '*' {
		prefix := pattern[:n-1]
		if strings.HasPrefix(path, prefix) {
			return true
		}
		// A pattern like /api/* should also match /api itself.
		return strings.HasSuffix(prefix, "/") && path == prefix[:len(prefix)-1]
	}
	return path == pattern
}
