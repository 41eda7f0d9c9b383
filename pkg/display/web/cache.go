package web

import "sync"

type cacheEntry struct {
	hash uint64
	data []byte
}

// cache is a ring of recently sent frames, so that a frame seen
// before (a blinking cursor, a redrawn score) can be sent to clients
// as an index rather than as pixels.
type cache struct {
	cache   []*cacheEntry
	idx     int
	enabled bool
	size    int
	sync.RWMutex
}

func newCache(size int) *cache {
	c := &cache{
		cache:   make([]*cacheEntry, size),
		size:    size,
		enabled: true,
	}
	for i := 0; i < size; i++ {
		c.cache[i] = &cacheEntry{}
	}

	return c
}

// add stores output at the next slot, evicting the oldest entry,
// and returns the slot used.
func (c *cache) add(hash uint64, output []byte) int {
	i := c.idx
	c.cache[i].data = output
	c.cache[i].hash = hash

	c.idx = (c.idx + 1) % c.size
	return i
}

// index returns the slot holding hash, or -1.
func (c *cache) index(hash uint64) int {
	if !c.enabled {
		return -1
	}
	for i, e := range c.cache {
		if len(e.data) > 0 && e.hash == hash {
			return i
		}
	}

	return -1
}

// reset empties the cache, used when the encoding of frames changes
// and cached entries no longer match what clients would decode.
func (c *cache) reset() {
	for _, e := range c.cache {
		e.hash, e.data = 0, nil
	}
	c.idx = 0
}
