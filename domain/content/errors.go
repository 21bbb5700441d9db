package content

import "errors"

// Fetch error kinds. The source fetcher converts every transport failure
// into one of these; nothing above it ever sees a panic or a raw status code.
var (
	// ErrNotFound occurs when a single-item lookup (post or category by
	// slug) returns an empty collection.
	ErrNotFound = errors.New("content not found")

	// ErrUnreachable occurs when the CMS cannot be reached at all
	// (connection refused, DNS failure, timeout).
	ErrUnreachable = errors.New("content source unreachable")

	// ErrServerStatus occurs when the CMS answers with a non-success status.
	ErrServerStatus = errors.New("content source returned error status")

	// ErrMalformedResponse occurs when the payload does not match the
	// expected shape.
	ErrMalformedResponse = errors.New("malformed content source response")
)
