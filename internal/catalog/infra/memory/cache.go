package memory

import "sync"

const defaultMaxEntries = 256

// Cache is a bounded in-memory memoization cache keyed by query signature.
// When full it evicts an arbitrary entry; catalog working sets stay far below
// the cap, so eviction is a safety valve rather than a policy.
type Cache struct {
	mu         sync.RWMutex
	maxEntries int
	store      map[string]any
}

func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Cache{
		maxEntries: maxEntries,
		store:      make(map[string]any),
	}
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.store[key]
	return v, ok
}

func (c *Cache) Set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.store[key]; !ok && len(c.store) >= c.maxEntries {
		for k := range c.store {
			delete(c.store, k)
			break
		}
	}
	c.store[key] = v
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
