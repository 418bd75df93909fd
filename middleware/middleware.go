// Package middleware provides HTTP middleware that canonicalizes request
// paths and redirects clients to the canonical form.
package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Morditux/cleanpath"
)

// Options configures the path canonicalization middleware behavior.
type Options struct {
	// ExcludePaths are paths that bypass canonicalization entirely.
	// Supports exact match and prefix match (pattern ending with *).
	// Useful for endpoints whose clients cannot follow redirects,
	// e.g. webhook receivers.
	ExcludePaths []string

	// RedirectStatus is the HTTP status used for redirects.
	// Default: 308 Permanent Redirect, which preserves the request
	// method. Use 301 only if legacy clients require it.
	RedirectStatus int

	// Logger, when set, logs each redirect at debug level.
	// Default: no logging.
	Logger logrus.FieldLogger
}

// Option is a function that configures Options.
type Option func(*Options)

// WithExcludePaths sets paths to exclude from canonicalization.
func WithExcludePaths(paths ...string) Option {
	return func(o *Options) {
		o.ExcludePaths = paths
	}
}

// WithRedirectStatus sets the HTTP status used for redirects.
func WithRedirectStatus(code int) Option {
	return func(o *Options) {
		o.RedirectStatus = code
	}
}

// WithLogger sets a logger for redirect events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// CleanPath creates a middleware that canonicalizes the request path.
//
// Requests whose path is already canonical are forwarded to the next
// handler untouched; the common case costs a single byte scan and no
// allocation. Anything else is redirected to the canonical path with the
// original query string reattached verbatim. The path is taken in its
// escaped form, so percent-encoding is never decoded; scheme and
// authority are untouched by the path-relative Location.
func CleanPath(opts ...Option) func(http.Handler) http.Handler {
	options := &Options{
		RedirectStatus: http.StatusPermanentRedirect,
	}

	for _, opt := range opts {
		opt(options)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The escaped path is the single view of the request used
			// here: exclusion matching and canonicalization must agree
			// on what counts as a separator.
			raw := r.URL.EscapedPath()

			// Check excluded paths
			for _, pattern := range options.ExcludePaths {
				if matchPath(raw, pattern) {
					next.ServeHTTP(w, r)
					return
				}
			}

			if cleanpath.IsCanonical(raw) {
				next.ServeHTTP(w, r)
				return
			}

			clean := cleanpath.Canonicalize(raw)
			if clean == raw {
				// Dirty-looking but already canonical, e.g.
				// dot-prefixed segments like /.well-known/.
				next.ServeHTTP(w, r)
				return
			}

			target := clean
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			if options.Logger != nil {
				options.Logger.WithFields(logrus.Fields{
					"path":   raw,
					"target": target,
				}).Debug("Redirecting to canonical path")
			}

			http.Redirect(w, r, target, options.RedirectStatus)
		})
	}
}
