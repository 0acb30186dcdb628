package redis

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

var errStaleFill = errors.New("stats cache fill superseded by invalidation")

// StatsCache stores serialized aggregates as plain string keys
// (SET quiz:{key} {json} EX ttl) and falls back to a loader on cache miss.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *StatsCache) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	redisKey := c.key(key)

	if payload, err := c.client.Get(ctx, redisKey).Bytes(); err == nil {
		return payload, nil
	}

	// Without a readable generation the result is served but not stored.
	gen, genErr := c.generation(ctx, key)
	result, err, _ := c.sf.Do(key+"#"+gen, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if payload, err := c.client.Get(ctx, redisKey).Bytes(); err == nil {
			return payload, nil
		}

		payload, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if ttl := c.ttlWithJitter(); ttl > 0 && genErr == nil {
			// A failed or stale write only costs a reload next time.
			_ = c.storeIfCurrent(ctx, key, gen, payload, ttl)
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// Invalidate drops the cached value and bumps the key's generation so fills
// that started earlier do not write their result back.
func (c *StatsCache) Invalidate(ctx context.Context, key string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.genKey(key))
		pipe.Del(ctx, c.key(key))
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "redis invalidate %s", key)
	}
	return nil
}

// storeIfCurrent writes payload only while the generation is still gen.
func (c *StatsCache) storeIfCurrent(ctx context.Context, key, gen string, payload []byte, ttl time.Duration) error {
	genKey := c.genKey(key)
	return c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		if cur != gen {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key(key), payload, ttl)
			return nil
		})
		return err
	}, genKey)
}

func (c *StatsCache) generation(ctx context.Context, key string) (string, error) {
	gen, err := c.client.Get(ctx, c.genKey(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "?", errors.Wrapf(err, "redis get generation %s", key)
	}
	return gen, nil
}

func (c *StatsCache) key(key string) string {
	return "quiz:" + key
}

func (c *StatsCache) genKey(key string) string {
	return "quiz:gen:" + key
}

func (c *StatsCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	c.rndMu.Lock()
	defer c.rndMu.Unlock()
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
