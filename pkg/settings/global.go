package settings

import "sync"

// Process-wide shared registry. Most applications want exactly one registry
// for their whole lifetime; Default gives them that without threading an
// instance through every call site. Code that needs explicit lifetimes, and
// all tests, should construct registries with New instead.
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the shared process-wide Registry, creating it on first use
// with the derived default settings path. Every call returns the same
// instance.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = New("")
	})
	return defaultRegistry, defaultErr
}
