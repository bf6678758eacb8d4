package geocode

import (
	"container/list"
	"context"
	"fmt"
	"sync"
)

// Resolver is the lookup capability the cache decorates.
type Resolver interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// CachedResolver wraps a Resolver with an in-memory LRU cache keyed on
// rounded coordinates.
type CachedResolver struct {
	inner Resolver
	cache *lruCache
}

func NewCachedResolver(inner Resolver, maxEntries int) *CachedResolver {
	return &CachedResolver{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

func (c *CachedResolver) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	key := fmt.Sprintf("%.4f,%.4f", lat, lng)
	if addr, ok := c.cache.get(key); ok {
		return addr, nil
	}
	addr, err := c.inner.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return addr, err
	}
	// Only cache hits so transient "no result" responses can be retried.
	if addr != "" {
		c.cache.put(key, addr)
	}
	return addr, nil
}

type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
}

type cacheEntry struct {
	key  string
	addr string
}

func newLRUCache(maxEntries int) *lruCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
	}
}

func (c *lruCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).addr, true
}

func (c *lruCache) put(key, addr string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).addr = addr
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&cacheEntry{key: key, addr: addr})
	c.entries[key] = el

	if c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
}
