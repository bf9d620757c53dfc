package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type memoryEntry[V any] struct {
	key       string
	value     V
	expiresAt time.Time // zero means no expiry
}

func (e *memoryEntry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-process cache with expiration and optional LRU eviction.
// Expired entries are dropped when read or when room is needed.
type Memory[V any] struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	recency    *list.List // front is most recently used
	defaultTTL time.Duration
	maxEntries int
	closed     bool
	now        func() time.Time
}

// MemoryOption configures a Memory cache.
type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	defaultTTL time.Duration
	maxEntries int
}

// WithDefaultTTL sets the expiry used when Set gets a zero ttl.
// Default: 1 hour.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(c *memoryConfig) {
		c.defaultTTL = d
	}
}

// WithMaxEntries bounds the cache size, evicting the least recently used entry.
// Zero means unlimited.
func WithMaxEntries(n int) MemoryOption {
	return func(c *memoryConfig) {
		c.maxEntries = n
	}
}

// NewMemory creates an in-process cache.
//
// Example:
//
//	c := cache.NewMemory[string](
//	    cache.WithDefaultTTL(5*time.Minute),
//	    cache.WithMaxEntries(500),
//	)
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	cfg := memoryConfig{defaultTTL: time.Hour}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Memory[V]{
		entries:    make(map[string]*list.Element),
		recency:    list.New(),
		defaultTTL: cfg.defaultTTL,
		maxEntries: cfg.maxEntries,
		now:        time.Now,
	}
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	if m.closed {
		return zero, ErrClosed
	}

	elem, ok := m.entries[key]
	if !ok {
		return zero, ErrNotFound
	}

	e := elem.Value.(*memoryEntry[V])
	if e.expired(m.now()) {
		m.remove(elem)
		return zero, ErrNotFound
	}

	m.recency.MoveToFront(elem)
	return e.value, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.defaultTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = m.now().Add(ttl)
	}

	if elem, ok := m.entries[key]; ok {
		e := elem.Value.(*memoryEntry[V])
		e.value = value
		e.expiresAt = expiresAt
		m.recency.MoveToFront(elem)
		return nil
	}

	if m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
		m.makeRoom()
	}

	m.entries[key] = m.recency.PushFront(&memoryEntry[V]{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
	})
	return nil
}

func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if elem, ok := m.entries[key]; ok {
		m.remove(elem)
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close drops all entries. Further calls fail with ErrClosed.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.entries = make(map[string]*list.Element)
	m.recency.Init()
	return nil
}

// makeRoom drops expired entries, or the least recently used one if none
// expired. Caller holds the mutex.
func (m *Memory[V]) makeRoom() {
	now := m.now()
	dropped := false
	for elem := m.recency.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*memoryEntry[V]).expired(now) {
			m.remove(elem)
			dropped = true
		}
		elem = prev
	}
	if !dropped {
		if oldest := m.recency.Back(); oldest != nil {
			m.remove(oldest)
		}
	}
}

func (m *Memory[V]) remove(elem *list.Element) {
	m.recency.Remove(elem)
	delete(m.entries, elem.Value.(*memoryEntry[V]).key)
}

var _ Cache[string] = (*Memory[string])(nil)
