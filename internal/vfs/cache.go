package vfs

import (
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
)

// FileSystem is the probing surface CachedFS decorates.
type FileSystem interface {
	Exists(path string) bool
	Open(path string) (io.ReadCloser, error)
}

// CachedFS memoizes existence checks in a bounded LRU. It is safe for
// concurrent use when the wrapped FileSystem is.
type CachedFS struct {
	inner  FileSystem
	exists *lru.Cache[string, bool]
}

// NewCached wraps inner with an existence cache holding up to size entries.
func NewCached(inner FileSystem, size int) (*CachedFS, error) {
	cache, err := lru.New[string, bool](size)
	if err != nil {
		return nil, fmt.Errorf("creating existence cache: %w", err)
	}
	return &CachedFS{inner: inner, exists: cache}, nil
}

// Exists reports whether the file exists, consulting the cache first.
func (c *CachedFS) Exists(path string) bool {
	if found, ok := c.exists.Get(path); ok {
		return found
	}
	found := c.inner.Exists(path)
	c.exists.Add(path, found)
	return found
}

// Open is not cached; file contents are always read from the wrapped FileSystem.
func (c *CachedFS) Open(path string) (io.ReadCloser, error) {
	return c.inner.Open(path)
}

// Len returns the number of cached existence checks.
func (c *CachedFS) Len() int {
	return c.exists.Len()
}
