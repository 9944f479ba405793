// Package scheme holds the resource locator and handle types used by
// the resource-open syscall. A URL names a resource as
// "scheme:reference"; the session resolves the scheme against its
// registry of openers.
package scheme

import "strings"

// URL is a parsed resource locator.
type URL struct {
	Scheme    string
	Reference string
}

// Parse splits a locator of the form "scheme://reference" or
// "scheme:reference". A locator without a scheme separator is treated
// as a bare reference with an empty scheme.
func Parse(s string) URL {
	i := strings.Index(s, ":")
	if i < 0 {
		return URL{Reference: s}
	}
	ref := s[i+1:]
	ref = strings.TrimPrefix(ref, "//")
	return URL{Scheme: s[:i], Reference: ref}
}

// String re-assembles the locator.
func (u URL) String() string {
	if u.Scheme == "" {
		return u.Reference
	}
	return u.Scheme + "://" + u.Reference
}

// Resource is an opened handle. There is no success/failure channel at
// the trap layer, so Open never fails; unknown locators resolve to the
// empty none: resource.
type Resource interface {
	URL() URL
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// Opener resolves one scheme's references into resources.
type Opener interface {
	Open(u URL) Resource
}

// OpenFunc adapts a function to the Opener interface.
type OpenFunc func(u URL) Resource

func (f OpenFunc) Open(u URL) Resource { return f(u) }
