package hashing

import "sync"

// cacheKey identifies a subtree: the position and the depth below it.
type cacheKey struct {
	hash  uint64
	depth int
}

// NodeCache stores node counts per position and depth. It is safe for
// concurrent use by several perft workers.
type NodeCache struct {
	mu          sync.RWMutex
	table       map[cacheKey]uint64
	maxCapacity int
	hits        uint64
	misses      uint64
}

// NewNodeCache creates a cache. maxCapacity of 0 means unlimited capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		table:       make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the stored count for hash at depth.
func (c *NodeCache) Get(hash uint64, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	nodes, ok := c.table[cacheKey{hash, depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Put stores a count unless the cache is full.
func (c *NodeCache) Put(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.full() {
		return
	}
	c.table[cacheKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (c *NodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.table)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *NodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.full()
}

// full reports whether the capacity limit is reached. Callers hold mu.
func (c *NodeCache) full() bool {
	return c.maxCapacity > 0 && len(c.table) >= c.maxCapacity
}

// Stats returns the number of lookups that hit and missed.
func (c *NodeCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
