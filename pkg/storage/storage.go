package storage

import (
	"context"
	"io"
)

// Storage reads objects from an object store.
type Storage interface {
	// Get retrieves an object. The caller must close the returned reader.
	Get(ctx context.Context, key string) (*Object, io.ReadCloser, error)

	// Head returns the object metadata without downloading it.
	Head(ctx context.Context, key string) (*Object, error)
}

// Object describes a stored object.
type Object struct {
	Key         string
	ContentType string
	Size        int64
}

// Config holds S3-compatible storage configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Bucket    string `env:"STORAGE_BUCKET,required"`
	AccessKey string `env:"STORAGE_ACCESS_KEY,required"`
	SecretKey string `env:"STORAGE_SECRET_KEY,required"`
	Endpoint  string `env:"STORAGE_ENDPOINT"` // MinIO or other S3-compatible services
	Region    string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	PathStyle bool   `env:"STORAGE_PATH_STYLE" envDefault:"false"` // required for MinIO

	// MaxObjectSize caps how many bytes ReadAll and LoadAttachment accept.
	MaxObjectSize int64 `env:"STORAGE_MAX_OBJECT_SIZE" envDefault:"10485760"`
}

// Default configuration values.
const (
	DefaultRegion        = "us-east-1"
	DefaultMaxObjectSize = 10 << 20 // 10MB
)

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.MaxObjectSize <= 0 {
		c.MaxObjectSize = DefaultMaxObjectSize
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
