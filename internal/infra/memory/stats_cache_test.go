package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStatsCacheCaches(t *testing.T) {
	cache := NewStatsCache(time.Minute)
	loader := &countingLoader{payload: []byte(`{"total_sessions":3}`)}

	for i := 0; i < 2; i++ {
		got, err := cache.GetOrLoad(context.Background(), "stats:crime", loader.load)
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if string(got) != `{"total_sessions":3}` {
			t.Fatalf("unexpected payload %s", got)
		}
	}
	if loader.calls.Load() != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls.Load())
	}
}

func TestStatsCacheExpiresAndInvalidates(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cache := NewStatsCacheWithClock(time.Minute, func() time.Time { return now })
	loader := &countingLoader{payload: []byte("{}")}
	ctx := context.Background()

	_, _ = cache.GetOrLoad(ctx, "k", loader.load)
	if err := cache.Invalidate(ctx, "k"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	_, _ = cache.GetOrLoad(ctx, "k", loader.load)
	if loader.calls.Load() != 2 {
		t.Fatalf("expected reload after invalidate, calls %d", loader.calls.Load())
	}

	// TTL plus maximum jitter has passed.
	now = now.Add(2 * time.Minute)
	_, _ = cache.GetOrLoad(ctx, "k", loader.load)
	if loader.calls.Load() != 3 {
		t.Fatalf("expected reload after expiry, calls %d", loader.calls.Load())
	}
}

func TestStatsCacheDoesNotCacheErrors(t *testing.T) {
	cache := NewStatsCache(time.Minute)
	boom := errors.New("db down")
	if _, err := cache.GetOrLoad(context.Background(), "k", func(context.Context) ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	loader := &countingLoader{payload: []byte("{}")}
	if _, err := cache.GetOrLoad(context.Background(), "k", loader.load); err != nil {
		t.Fatalf("get after error: %v", err)
	}
	if loader.calls.Load() != 1 {
		t.Fatalf("expected fresh load after error")
	}
}

func TestStatsCacheConcurrentCallers(t *testing.T) {
	cache := NewStatsCache(time.Minute)
	loader := &countingLoader{payload: []byte("{}"), delay: 20 * time.Millisecond}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.GetOrLoad(context.Background(), "k", loader.load); err != nil {
				t.Errorf("get: %v", err)
			}
		}()
	}
	wg.Wait()
	if loader.calls.Load() > 2 {
		t.Fatalf("expected concurrent fills to be collapsed, got %d loads", loader.calls.Load())
	}
}

func TestStatsCacheDropsFillInvalidatedMidLoad(t *testing.T) {
	cache := NewStatsCache(time.Minute)
	ctx := context.Background()

	// A record commits and invalidates while the first fill is still reading.
	stale := func(ctx context.Context) ([]byte, error) {
		if err := cache.Invalidate(ctx, "k"); err != nil {
			return nil, err
		}
		return []byte("stale"), nil
	}
	got, err := cache.GetOrLoad(ctx, "k", stale)
	if err != nil || string(got) != "stale" {
		t.Fatalf("first fill: %s %v", got, err)
	}

	loader := &countingLoader{payload: []byte("fresh")}
	got, err = cache.GetOrLoad(ctx, "k", loader.load)
	if err != nil || string(got) != "fresh" || loader.calls.Load() != 1 {
		t.Fatalf("stale fill was cached: %s calls=%d err=%v", got, loader.calls.Load(), err)
	}
	got, _ = cache.GetOrLoad(ctx, "k", loader.load)
	if string(got) != "fresh" || loader.calls.Load() != 1 {
		t.Fatalf("fresh fill should be cached, calls=%d", loader.calls.Load())
	}
}

type countingLoader struct {
	payload []byte
	delay   time.Duration
	calls   atomic.Int32
}

func (l *countingLoader) load(context.Context) ([]byte, error) {
	l.calls.Add(1)
	if l.delay > 0 {
		time.Sleep(l.delay)
	}
	return l.payload, nil
}
