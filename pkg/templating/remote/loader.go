package remote

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/dmitrymomot/fluentmail/pkg/cache"
	"github.com/dmitrymomot/fluentmail/pkg/storage"
)

// Loader fetches the raw template document stored under key.
type Loader interface {
	Load(ctx context.Context, key string) ([]byte, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, key string) ([]byte, error)

func (f LoaderFunc) Load(ctx context.Context, key string) ([]byte, error) {
	return f(ctx, key)
}

// FSLoader reads templates from a file system, such as an embed.FS.
// Keys without an extension get ext appended.
func FSLoader(fsys fs.FS, ext string) Loader {
	return LoaderFunc(func(_ context.Context, key string) ([]byte, error) {
		name := withExt(key, ext)
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, name, err)
		}
		return data, nil
	})
}

// StorageLoader reads templates from object storage under prefix.
// Keys without an extension get ext appended. maxSize <= 0 uses
// storage.DefaultMaxObjectSize.
func StorageLoader(s storage.Storage, prefix, ext string, maxSize int64) Loader {
	return LoaderFunc(func(ctx context.Context, key string) ([]byte, error) {
		name := path.Join(prefix, withExt(key, ext))
		_, data, err := storage.ReadAll(ctx, s, name, maxSize)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, name, err)
		}
		return data, nil
	})
}

// CachedLoader keeps documents from next in c for ttl.
// Concurrent loads of the same missing key reach next once.
func CachedLoader(next Loader, c cache.Cache[string], ttl time.Duration) Loader {
	g := cache.NewGroup(c)
	return LoaderFunc(func(ctx context.Context, key string) ([]byte, error) {
		doc, err := g.GetOrSet(ctx, key, func(ctx context.Context) (string, time.Duration, error) {
			data, err := next.Load(ctx, key)
			return string(data), ttl, err
		})
		if err != nil {
			return nil, err
		}
		return []byte(doc), nil
	})
}

func withExt(key, ext string) string {
	if ext == "" || path.Ext(key) != "" {
		return key
	}
	return key + ext
}
