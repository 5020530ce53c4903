package series

import (
	"math/rand/v2"
	"sync"
)

// Cache memoises one Collection per region. Each region draws from its own
// random stream derived from the seed, so results do not depend on the order
// in which regions are requested.
type Cache struct {
	mu       sync.Mutex
	seed     uint64
	entries  map[Region]Collection
	generate func(Region, *rand.Rand) (Collection, error)
}

// NewCache returns an empty cache whose streams derive from seed.
func NewCache(seed uint64) *Cache {
	return &Cache{
		seed:     seed,
		entries:  make(map[Region]Collection, len(regionNames)),
		generate: Generate,
	}
}

// Get returns the collection for region, generating it on first use. The
// returned value is a copy; repeated calls return identical values until Reset.
func (c *Cache) Get(region Region) (Collection, error) {
	if !region.Valid() {
		return Collection{}, ErrUnknownRegion
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	coll, ok := c.entries[region]
	if !ok {
		var err error
		if coll, err = c.generate(region, c.stream(region)); err != nil {
			return Collection{}, err
		}
		c.entries[region] = coll
	}
	return coll.Clone(), nil
}

// Reset drops every memoised collection. The next Get regenerates from the
// same seed, so values repeat.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Region]Collection, len(regionNames))
}

// Reseed drops every memoised collection and switches to a new seed.
func (c *Cache) Reseed(seed uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seed = seed
	c.entries = make(map[Region]Collection, len(regionNames))
}

// Len reports how many regions are currently memoised.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache) stream(region Region) *rand.Rand {
	return rand.New(rand.NewPCG(c.seed, uint64(region)+1))
}
