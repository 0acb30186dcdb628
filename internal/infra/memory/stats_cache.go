package memory

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// StatsCache caches serialized aggregates with TTL to avoid repeated DB hits.
type StatsCache struct {
	ttl   time.Duration
	clock func() time.Time
	sf    singleflight.Group
	rnd   *rand.Rand
	rndMu sync.Mutex

	mu      sync.RWMutex
	entries map[string]cachedStats
	// gens counts invalidations per key; a fill that started under an older
	// generation must not store its result.
	gens map[string]uint64
}

type cachedStats struct {
	payload   []byte
	expiresAt time.Time
}

func NewStatsCache(ttl time.Duration) *StatsCache {
	return &StatsCache{
		ttl:     ttl,
		clock:   time.Now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		entries: make(map[string]cachedStats),
		gens:    make(map[string]uint64),
	}
}

// NewStatsCacheWithClock is test-only for deterministic expiry.
func NewStatsCacheWithClock(ttl time.Duration, clock func() time.Time) *StatsCache {
	c := NewStatsCache(ttl)
	c.clock = clock
	return c
}

func (c *StatsCache) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if payload, ok := c.lookup(key); ok {
		return payload, nil
	}

	gen := c.generation(key)
	result, err, _ := c.sf.Do(key+"#"+strconv.FormatUint(gen, 10), func() (interface{}, error) {
		if payload, ok := c.lookup(key); ok {
			return payload, nil
		}

		payload, err := load(ctx)
		if err != nil {
			return nil, err
		}

		ttl := c.ttlWithJitter()
		if ttl > 0 {
			c.mu.Lock()
			if c.gens[key] == gen {
				c.entries[key] = cachedStats{payload: payload, expiresAt: c.clock().Add(ttl)}
			}
			c.mu.Unlock()
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (c *StatsCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.gens[key]++
	c.mu.Unlock()
	return nil
}

func (c *StatsCache) generation(key string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gens[key]
}

func (c *StatsCache) lookup(key string) ([]byte, bool) {
	now := c.clock()
	c.mu.RLock()
	defer c.mu.RUnlock()
	if entry, ok := c.entries[key]; ok && entry.expiresAt.After(now) {
		return entry.payload, true
	}
	return nil, false
}

func (c *StatsCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	c.rndMu.Lock()
	defer c.rndMu.Unlock()
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
