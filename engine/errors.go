// Package engine orchestrates the full navigation pipeline: fetch, decode,
// parse, cascade, and lay out a page (spec §4.8).
package engine

import (
	"fmt"

	"gocko/protocol"
	"gocko/uri"
)

// NavigationError wraps a fetch/parse-time failure with the URL it
// occurred against, surfaced to navigate/load callers.
type NavigationError struct {
	URL   uri.URL
	Code  protocol.ErrorCode
	Cause error
}

func (e *NavigationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("engine: navigate %s: %s: %v", e.URL.Raw, e.Code, e.Cause)
	}
	return fmt.Sprintf("engine: navigate %s: %s", e.URL.Raw, e.Code)
}

func (e *NavigationError) Unwrap() error { return e.Cause }

const maxRedirects = 10

var redirectCodes = map[int]bool{301: true, 302: true, 303: true, 307: true, 308: true}
