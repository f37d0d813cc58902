package formula

import (
	"container/list"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache is a bounded, thread-safe LRU of parsed formulas keyed by the xxhash of their source.
// Parsed formulas are immutable, so cells with identical source share one tree.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[uint64]*list.Element
	order    *list.List
	hits     uint64
	misses   uint64
}

type cacheEntry struct {
	key     uint64
	source  string
	formula *Formula
}

// NewCache creates a Cache holding at most capacity formulas.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[uint64]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the formula parsed from source, if present.
func (c *Cache) Get(source string) (*Formula, bool) {
	key := xxhash.Sum64String(source)

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	entry := elem.Value.(*cacheEntry)
	if entry.source != source {
		c.misses++
		return nil, false
	}
	c.order.MoveToFront(elem)
	c.hits++
	return entry.formula, true
}

// Put stores f under source, evicting the least recently used entry when full.
func (c *Cache) Put(source string, f *Formula) {
	key := xxhash.Sum64String(source)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.source = source
		entry.formula = f
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, source: source, formula: f})
}

// Len returns the number of cached formulas.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
