package scheme

import "io"

// None is the empty resource: reads hit EOF, writes are swallowed. It
// is what unknown schemes open, so a bad locator is absorbed silently
// instead of surfacing an error the ABI has no room for.
type None struct{}

func (None) URL() URL                    { return URL{Scheme: "none"} }
func (None) Read(p []byte) (int, error)  { return 0, io.EOF }
func (None) Write(p []byte) (int, error) { return len(p), nil }
func (None) Close() error                { return nil }
