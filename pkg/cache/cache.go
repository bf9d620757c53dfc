package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a key-value store with per-entry expiration.
//
// A ttl of zero passed to Set uses the backend's default; a negative ttl
// keeps the entry until it is deleted or evicted.
type Cache[V any] interface {
	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Codec converts values for backends that store bytes.
type Codec[V any] interface {
	Encode(v V) ([]byte, error)
	Decode(data []byte) (V, error)
}

// JSON is the default Codec.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return data, nil
}

func (JSON[V]) Decode(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrDecode, err)
	}
	return v, nil
}

// Loader computes a value on a cache miss and says how long to keep it.
type Loader[V any] func(ctx context.Context) (V, time.Duration, error)

// Group fronts a Cache and collapses concurrent misses on the same key into
// a single load.
type Group[V any] struct {
	cache  Cache[V]
	flight singleflight.Group
}

// NewGroup creates a Group over c.
func NewGroup[V any](c Cache[V]) *Group[V] {
	return &Group[V]{cache: c}
}

// GetOrSet returns the cached value for key, or calls load and caches its
// result. Load errors are returned and nothing is cached. Failing to store a
// loaded value is not an error.
func (g *Group[V]) GetOrSet(ctx context.Context, key string, load Loader[V]) (V, error) {
	if v, err := g.cache.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := g.flight.Do(key, func() (any, error) {
		val, ttl, err := load(ctx)
		if err != nil {
			return nil, err
		}
		_ = g.cache.Set(ctx, key, val, ttl)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	val, _ := v.(V)
	return val, nil
}

// Forget drops key from the underlying cache.
func (g *Group[V]) Forget(ctx context.Context, key string) error {
	g.flight.Forget(key)
	return g.cache.Delete(ctx, key)
}
