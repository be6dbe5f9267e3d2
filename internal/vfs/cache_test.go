package vfs

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFS struct {
	mu    sync.Mutex
	files map[string]bool
	calls int
}

func (c *countingFS) Exists(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.files[path]
}

func (c *countingFS) Open(path string) (io.ReadCloser, error) {
	return nil, io.EOF
}

func TestCachedFS_MemoizesExistence(t *testing.T) {
	inner := &countingFS{files: map[string]bool{"~/a.js": true}}
	c, err := NewCached(inner, 8)
	require.NoError(t, err)

	assert.True(t, c.Exists("~/a.js"))
	assert.True(t, c.Exists("~/a.js"))
	assert.False(t, c.Exists("~/b.js"))
	assert.False(t, c.Exists("~/b.js"))

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 2, c.Len())
}

func TestCachedFS_Evicts(t *testing.T) {
	inner := &countingFS{files: map[string]bool{}}
	c, err := NewCached(inner, 2)
	require.NoError(t, err)

	c.Exists("~/1")
	c.Exists("~/2")
	c.Exists("~/3")
	assert.Equal(t, 2, c.Len())
}

func TestCachedFS_InvalidSize(t *testing.T) {
	_, err := NewCached(&countingFS{}, 0)
	assert.Error(t, err)
}

func TestCachedFS_ConcurrentExistence(t *testing.T) {
	inner := &countingFS{files: map[string]bool{"~/a.js": true}}
	c, err := NewCached(inner, 16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, c.Exists("~/a.js"))
		}()
	}
	wg.Wait()
}
