package scan

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/ostafen/sniff/pkg/magic"
)

const maxCachedPrefixes = 1 << 14

type cachedResult struct {
	typ   magic.Type
	found bool
}

// prefixCache memoizes classification results by the hash of the bytes they
// were computed from.
type prefixCache struct {
	mu      sync.RWMutex
	results map[uint64]cachedResult
	hits    int
}

func newPrefixCache() *prefixCache {
	return &prefixCache{results: make(map[uint64]cachedResult)}
}

func (c *prefixCache) classify(m *magic.Matcher, prefix []byte) (magic.Type, bool) {
	key := xxhash.Sum64(prefix)

	c.mu.RLock()
	res, ok := c.results[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return res.typ, res.found
	}

	typ, found := m.Classify(prefix)

	c.mu.Lock()
	if len(c.results) < maxCachedPrefixes {
		c.results[key] = cachedResult{typ: typ, found: found}
	}
	c.mu.Unlock()
	return typ, found
}

func (c *prefixCache) Hits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}
