// Package uri provides absolute and relative URL parsing and resolution.
package uri

import (
	"fmt"
	"net/url"
	"strings"
)

// URL is an absolute or relative URL, resolvable against a base.
type URL struct {
	Raw    string
	Scheme string
	Host   string
	Path   string
	Query  string
	Fragment string
}

// Parse parses text as an absolute URL, or relative to base when base is
// non-nil and text has no scheme of its own.
func Parse(text string, base *URL) (URL, error) {
	u, err := url.Parse(text)
	if err != nil {
		return URL{}, fmt.Errorf("uri: parse %q: %w", text, err)
	}

	if !u.IsAbs() && base != nil {
		baseURL, err := url.Parse(base.Raw)
		if err != nil {
			return URL{}, fmt.Errorf("uri: parse base %q: %w", base.Raw, err)
		}
		u = baseURL.ResolveReference(u)
	}

	if !u.IsAbs() {
		return URL{}, fmt.Errorf("uri: %q is not absolute and no base was given", text)
	}

	return fromNetURL(u), nil
}

// MustParse parses text, panicking on error. Intended for literals in tests.
func MustParse(text string) URL {
	u, err := Parse(text, nil)
	if err != nil {
		panic(err)
	}
	return u
}

func fromNetURL(u *url.URL) URL {
	return URL{
		Raw:      u.String(),
		Scheme:   u.Scheme,
		Host:     u.Host,
		Path:     u.Path,
		Query:    u.RawQuery,
		Fragment: u.Fragment,
	}
}

// Resolve resolves ref against u as a base, the way a browser resolves a
// relative link or an href attribute.
func (u URL) Resolve(ref string) (URL, error) {
	return Parse(ref, &u)
}

// String returns the canonical string form of the URL.
func (u URL) String() string {
	return u.Raw
}

// IsHTTP reports whether the scheme is http or https.
func (u URL) IsHTTP() bool {
	return strings.EqualFold(u.Scheme, "http") || strings.EqualFold(u.Scheme, "https")
}
