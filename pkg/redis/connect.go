package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds connection settings.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	URL           string        `env:"REDIS_URL,required"`
	PoolSize      int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	DialTimeout   time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	IOTimeout     time.Duration `env:"REDIS_IO_TIMEOUT" envDefault:"3s"`
	RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
}

// Option adjusts a Config before connecting.
type Option func(*Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) Option {
	return func(c *Config) {
		c.PoolSize = n
	}
}

// WithTimeouts sets the dial timeout and the read/write timeout.
func WithTimeouts(dial, io time.Duration) Option {
	return func(c *Config) {
		c.DialTimeout = dial
		c.IOTimeout = io
	}
}

// WithRetry sets how many times the first ping is attempted. The wait between
// attempts grows linearly from interval.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(c *Config) {
		c.RetryAttempts = attempts
		c.RetryInterval = interval
	}
}

func defaultConfig(url string) Config {
	return Config{
		URL:           url,
		PoolSize:      10,
		DialTimeout:   5 * time.Second,
		IOTimeout:     3 * time.Second,
		RetryAttempts: 3,
		RetryInterval: 2 * time.Second,
	}
}

// Open connects to the Redis server at url and pings it.
// Supports redis:// and rediss:// (TLS) URLs.
//
// Example:
//
//	client, err := redis.Open(ctx, "redis://localhost:6379/0",
//	    redis.WithPoolSize(20),
//	    redis.WithRetry(5, time.Second),
//	)
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	cfg := defaultConfig(url)
	for _, opt := range opts {
		opt(&cfg)
	}
	return OpenConfig(ctx, cfg)
}

// OpenConfig connects with an explicit Config.
func OpenConfig(ctx context.Context, cfg Config) (redis.UniversalClient, error) {
	if cfg.URL == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(cfg.URL, "redis://") && !strings.HasPrefix(cfg.URL, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	ro, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	if cfg.PoolSize > 0 {
		ro.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		ro.DialTimeout = cfg.DialTimeout
	}
	if cfg.IOTimeout > 0 {
		ro.ReadTimeout = cfg.IOTimeout
		ro.WriteTimeout = cfg.IOTimeout
	}

	return connect(ctx, ro, cfg.RetryAttempts, cfg.RetryInterval)
}

// MustOpen is Open that exits the process on failure.
func MustOpen(ctx context.Context, url string, opts ...Option) redis.UniversalClient {
	client, err := Open(ctx, url, opts...)
	if err != nil {
		slog.Error("failed to open redis connection", "error", err)
		os.Exit(1)
	}
	return client
}

func connect(ctx context.Context, ro *redis.Options, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	attempts = max(attempts, 1)

	var lastErr error
	for i := range attempts {
		client := redis.NewClient(ro)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		if err := wait(ctx, time.Duration(i+1)*interval); err != nil {
			return nil, errors.Join(ErrConnectionFailed, err)
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
