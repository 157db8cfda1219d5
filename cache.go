package namedcolor

import "sync"

// DefaultCacheSize is the number of lookups a CachedTable remembers.
const DefaultCacheSize = 4096

// CachedTable memoizes lookups on a Table. Entries are evicted in the
// order they were added once the cache is full. It is safe for concurrent
// use.
type CachedTable struct {
	*Table

	mu     sync.RWMutex
	limit  int
	keys   []uint32
	values map[uint32]Match
	hits   int
	misses int
}

// NewCachedTable wraps t with a cache of at most size entries. A size of
// zero or less selects DefaultCacheSize.
func NewCachedTable(t *Table, size int) *CachedTable {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedTable{
		Table:  t,
		limit:  size,
		keys:   make([]uint32, 0, size),
		values: make(map[uint32]Match, size),
	}
}

// Nearest returns the cached match for target, computing and storing it
// on a miss.
func (c *CachedTable) Nearest(target Point) Match {
	key := target.Key()
	c.mu.RLock()
	m, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		m.Query = target
		return m
	}

	m = c.Table.Nearest(target)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if _, exists := c.values[key]; !exists {
		if len(c.keys) >= c.limit {
			oldest := c.keys[0]
			c.keys = c.keys[1:]
			delete(c.values, oldest)
		}
		c.keys = append(c.keys, key)
	}
	c.values[key] = m
	return m
}

// LookupHex is Table.LookupHex through the cache.
func (c *CachedTable) LookupHex(code string) (Match, error) {
	p, err := ParseHex(code)
	if err != nil {
		return Match{}, err
	}
	return c.Nearest(p), nil
}

// LookupRGB is Table.LookupRGB through the cache.
func (c *CachedTable) LookupRGB(r, g, b int) (Match, error) {
	p, err := PointFromRGB(r, g, b)
	if err != nil {
		return Match{}, err
	}
	return c.Nearest(p), nil
}

// Cached returns the number of cached entries.
func (c *CachedTable) Cached() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}

// Counters returns the number of cache hits and misses so far.
func (c *CachedTable) Counters() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// NameOfHex is Table.NameOfHex through the cache.
func (c *CachedTable) NameOfHex(code string) (string, error) {
	m, err := c.LookupHex(code)
	if err != nil {
		return "", err
	}
	return m.Name(), nil
}

// NameOfRGB is Table.NameOfRGB through the cache.
func (c *CachedTable) NameOfRGB(r, g, b int) (string, error) {
	m, err := c.LookupRGB(r, g, b)
	if err != nil {
		return "", err
	}
	return m.Name(), nil
}
