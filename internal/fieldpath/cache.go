package fieldpath

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is used by NewCache when size is not positive.
const DefaultCacheSize = 256

// Cache memoises parsed paths by their source string.
// Paths are immutable, so cached values may be shared freely.
// Safe for concurrent use.
type Cache struct {
	entries *lru.Cache
}

// NewCache creates a Cache holding up to size parsed paths.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create path cache: %w", err)
	}

	return &Cache{entries: entries}, nil
}

// Parse returns the cached Path for input, parsing and storing it on a miss.
// Parse failures are not cached.
func (c *Cache) Parse(input string) (Path, error) {
	if v, ok := c.entries.Get(input); ok {
		return v.(Path), nil
	}

	p, err := Parse(input)
	if err != nil {
		return Path{}, err
	}

	c.entries.Add(input, p)

	return p, nil
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	return c.entries.Len()
}
