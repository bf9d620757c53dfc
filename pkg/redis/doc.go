// Package redis opens go-redis clients for the Redis-backed template cache.
//
// Open parses a redis:// or rediss:// URL, applies pool and timeout settings
// and pings the server, retrying with a linearly growing wait:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//	    redis.WithPoolSize(20),
//	    redis.WithRetry(5, time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	templates := cache.NewRedis[string](client, nil, cache.WithPrefix("mail-templates"))
//
// OpenConfig takes the same settings as a Config struct with env tags.
package redis
