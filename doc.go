/*
Package cleanpath canonicalizes HTTP request paths and provides middleware
that redirects clients to the canonical form.

A canonical path begins with a single leading "/", contains no empty,
"." or ".." segments, and ends in a "/" unless its final segment looks
like a filename with an extension:

	//a//b//../  ->  /a/
	/api/users   ->  /api/users/
	//m.js       ->  /m.js
	/m.          ->  /m./

# Architecture

The library is organized into two components:

  - Core (this package): Pure string functions. IsCanonical is a
    non-allocating detector for already-clean paths, Canonicalize is the
    full segment-stack pass, and Canonical combines the two.
  - Middleware: Integrates the core with net/http. Requests whose path is
    already canonical are forwarded untouched; everything else receives a
    permanent redirect to the canonical path with the original query
    string reattached.

# HTTP Middleware

	handler := middleware.CleanPath()(myHandler)

The middleware never decodes percent-encoding and never inspects the
request body or headers; it only reshapes the path. Configuration
(excluded paths, redirect status, logging) lives entirely in the
middleware package; the core takes no options.

# Performance

IsCanonical handles the hot path of a request pipeline: for well-behaved
clients it is a single byte scan with zero allocations. The full
canonicalizer runs only when that scan finds a defect. Resolution of ".."
and "." is an iterative segment stack, so pathological inputs (thousands
of ".." segments) cost linear time and bounded memory, never stack depth.
*/
package cleanpath
