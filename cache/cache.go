package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache memoizes generated text keyed by model and prompt.
type Cache struct {
	cache *cache.Cache
}

// New returns a cache whose entries expire after ttl. A nil *Cache is valid
// and never hits.
func New(ttl time.Duration) *Cache {
	return &Cache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, found := c.cache.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (c *Cache) SetDefault(key string, value string) {
	if c == nil {
		return
	}
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) ItemCount() int {
	if c == nil {
		return 0
	}
	return c.cache.ItemCount()
}
