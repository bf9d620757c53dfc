// Package cache provides a small generic cache with in-memory and Redis
// backends, used to keep fetched templates close to the sender.
//
// # Backends
//
// [Memory] keeps entries in process with expiry and optional LRU eviction:
//
//	c := cache.NewMemory[string](
//	    cache.WithDefaultTTL(5*time.Minute),
//	    cache.WithMaxEntries(500),
//	)
//
// [Redis] shares entries between processes. Values are JSON-encoded unless a
// [Codec] is given:
//
//	c := cache.NewRedis[string](client, nil, cache.WithPrefix("mail-templates"))
//
// TTL semantics for Set:
//   - positive: the entry expires after this duration
//   - zero: the backend default (1 hour unless configured)
//   - negative: the entry never expires
//
// # Stampede Protection
//
// [Group] loads a missing key once no matter how many goroutines ask for it
// concurrently:
//
//	g := cache.NewGroup[string](c)
//	body, err := g.GetOrSet(ctx, "welcome", func(ctx context.Context) (string, time.Duration, error) {
//	    return fetch(ctx, "welcome")
//	})
package cache
